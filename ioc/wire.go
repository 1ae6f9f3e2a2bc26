//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/stats"
	"github.com/ecodeclub/testhub/internal/testcase"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitUserModule,
		project.InitModule,
		testcase.InitModule,
		stats.InitModule,
		initGinxServer)
	return new(App), nil
}

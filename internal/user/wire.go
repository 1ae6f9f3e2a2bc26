//go:build wireinject

package user

import (
	"sync"

	"github.com/ecodeclub/testhub/internal/user/internal/repository"
	"github.com/ecodeclub/testhub/internal/user/internal/repository/dao"
	"github.com/ecodeclub/testhub/internal/user/internal/service"
	"github.com/ecodeclub/testhub/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewUserRepository,
	service.NewUserService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

var (
	daoOnce sync.Once
	userDAO dao.UserDAO
)

func initDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		userDAO = dao.NewGORMUserDAO(db)
	})
	return userDAO
}

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package stats

import (
	"sync"
	"time"

	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/stats/internal/repository"
	"github.com/ecodeclub/testhub/internal/stats/internal/repository/dao"
	"github.com/ecodeclub/testhub/internal/stats/internal/service"
	"github.com/ecodeclub/testhub/internal/stats/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule(db *egorm.Component, prjModule *project.Module) *Module {
	wire.Build(
		initDAO,
		initLocation,
		repository.NewStatsRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*project.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return &Module{}
}

var (
	statsDAO dao.StatsDAO
	daoOnce  sync.Once
)

// initDAO 统计只读其他模块的表，不需要建表
func initDAO(db *egorm.Component) dao.StatsDAO {
	daoOnce.Do(func() {
		statsDAO = dao.NewGORMStatsDAO(db)
	})
	return statsDAO
}

// initLocation 趋势按照哪个时区切分日、周、月，默认是本地时区
func initLocation() *time.Location {
	name := econf.GetString("stats.location")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		elog.DefaultLogger.Warn("时区配置错误，使用本地时区", elog.String("location", name), elog.FieldErr(err))
		return time.Local
	}
	return loc
}

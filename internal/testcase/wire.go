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

package testcase

import (
	"sync"

	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository/dao"
	"github.com/ecodeclub/testhub/internal/testcase/internal/service"
	"github.com/ecodeclub/testhub/internal/testcase/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, prjModule *project.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewTestCaseRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*project.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return &Module{}
}

var (
	testCaseDAO dao.TestCaseDAO
	daoOnce     sync.Once
)

func initDAO(db *egorm.Component) dao.TestCaseDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		testCaseDAO = dao.NewGORMTestCaseDAO(db)
	})
	return testCaseDAO
}

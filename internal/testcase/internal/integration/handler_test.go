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
package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/middleware"
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/test"
	testioc "github.com/ecodeclub/testhub/internal/test/ioc"
	"github.com/ecodeclub/testhub/internal/testcase"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository/dao"
	"github.com/ecodeclub/testhub/internal/testcase/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	admin  = auth.Principal{ID: 1, Role: auth.RoleAdmin}
	tester = auth.Principal{ID: 2, Role: auth.RoleTester}
)

type HandlerTestSuite struct {
	suite.Suite
	server    *gin.Engine
	db        *egorm.Component
	dao       dao.TestCaseDAO
	prjSvc    project.Service
	principal auth.Principal
	pid       int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitSQLiteDB(s.T().Name())
	prjModule := project.InitModule(s.db)
	module := testcase.InitModule(s.db, prjModule)
	server := test.NewServer().Engine
	server.Use(test.WithPrincipal(func() auth.Principal {
		return s.principal
	}))
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server)
	server.Use(middleware.NewCheckRoleMiddlewareBuilder(auth.RoleAdmin).Build())
	module.AdminHandler.PrivateRoutes(server)
	s.server = server
	s.dao = dao.NewGORMTestCaseDAO(s.db)
	s.prjSvc = prjModule.Svc
}

func (s *HandlerTestSuite) SetupTest() {
	s.principal = admin
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	pid, err := s.prjSvc.Save(ctx, project.Project{Name: "Ví điện tử"})
	require.NoError(s.T(), err)
	s.pid = pid
	require.NoError(s.T(), s.prjSvc.GrantAccess(ctx, pid, []int64{tester.ID}))
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"test_cases", "executions", "test_assignments", "projects", "project_accesses"} {
		require.NoError(s.T(), s.db.Exec("DELETE FROM "+table).Error)
	}
}

func (s *HandlerTestSuite) createCase(hangMuc string, required int64) int64 {
	id, err := s.dao.Save(context.Background(), dao.TestCase{
		ProjectId:     s.pid,
		HangMuc:       hangMuc,
		TinhNang:      "đăng nhập",
		SoLanPhaiTest: required,
		Priority:      "cao",
		Platform:      "web",
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) addExecution(caseId int64, loi string, at time.Time) {
	_, err := s.dao.InsertExecution(context.Background(), dao.Execution{
		TestCaseId:    caseId,
		TesterId:      tester.ID,
		Loi:           loi,
		ExecutionDate: at.UnixMilli(),
	})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		req      func() web.SaveReq
		wantCode int
	}{
		{
			name: "新建",
			req: func() web.SaveReq {
				return web.SaveReq{ProjectId: s.pid, HangMuc: "Login", TinhNang: "đăng nhập",
					SoLanPhaiTest: 2, Priority: "cao", Platform: "app"}
			},
			wantCode: http.StatusOK,
		},
		{
			name: "要求次数小于 1",
			req: func() web.SaveReq {
				return web.SaveReq{ProjectId: s.pid, HangMuc: "Login", SoLanPhaiTest: 0,
					Priority: "cao", Platform: "app"}
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "非法优先级",
			req: func() web.SaveReq {
				return web.SaveReq{ProjectId: s.pid, HangMuc: "Login", SoLanPhaiTest: 1,
					Priority: "urgent", Platform: "app"}
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "非法平台",
			req: func() web.SaveReq {
				return web.SaveReq{ProjectId: s.pid, HangMuc: "Login", SoLanPhaiTest: 1,
					Priority: "low", Platform: "desktop"}
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "项目不存在",
			req: func() web.SaveReq {
				return web.SaveReq{ProjectId: s.pid + 100, HangMuc: "Login", SoLanPhaiTest: 1,
					Priority: "low", Platform: "web"}
			},
			wantCode: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/test-cases", iox.NewJSONReader(tc.req()))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			tcase, err := s.dao.GetById(context.Background(), recorder.MustScan().Data)
			require.NoError(t, err)
			assert.Equal(t, s.pid, tcase.ProjectId)
			assert.Equal(t, int64(2), tcase.SoLanPhaiTest)
			assert.Equal(t, "app", tcase.Platform)
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	now := time.Now()
	a := s.createCase("A", 2)
	b := s.createCase("B", 2)
	s.createCase("C", 2)
	// A 先失败后通过，最近一次是通过
	s.addExecution(a, "crash", now.Add(-2*time.Hour))
	s.addExecution(a, "", now.Add(-time.Hour))
	s.addExecution(b, "  nút bị lệch ", now)

	s.principal = tester
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/test-cases", s.pid), nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.SummaryList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(s.T(), int64(3), res.Total)
	require.Len(s.T(), res.TestCases, 3)
	got := map[string]web.Summary{}
	for _, c := range res.TestCases {
		got[c.HangMuc] = c
	}
	assert.Equal(s.T(), "passed", got["A"].CurrentStatus)
	assert.Equal(s.T(), int64(2), got["A"].ExecutionCount)
	assert.Equal(s.T(), 100, got["A"].CompletionRate)
	assert.Equal(s.T(), "failed", got["B"].CurrentStatus)
	assert.Equal(s.T(), 50, got["B"].CompletionRate)
	assert.Equal(s.T(), "not_executed", got["C"].CurrentStatus)
	assert.Equal(s.T(), 0, got["C"].CompletionRate)

	// 过滤
	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/test-cases?hang_muc=B", s.pid), nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.SummaryList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), int64(1), recorder.MustScan().Data.Total)

	// 没有权限的测试人员
	s.principal = auth.Principal{ID: 99, Role: auth.RoleTester}
	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/test-cases", s.pid), nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.SummaryList]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusForbidden, recorder.Code)
}

func (s *HandlerTestSuite) TestRecord() {
	t := s.T()
	id := s.createCase("A", 1)
	s.principal = tester

	record := func(req web.RecordReq) int {
		r, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/test-cases/%d/executions", id), iox.NewJSONReader(req))
		require.NoError(t, err)
		r.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[int64]()
		s.server.ServeHTTP(recorder, r)
		return recorder.Code
	}

	// 没有分配
	assert.Equal(t, http.StatusForbidden, record(web.RecordReq{CamNhan: "ok"}))

	s.principal = admin
	r, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/test-cases/%d/assignments", id),
		iox.NewJSONReader(web.AssignReq{UserIds: []int64{tester.ID}}))
	require.NoError(t, err)
	r.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, r)
	require.Equal(t, http.StatusOK, recorder.Code)

	s.principal = tester
	date := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, http.StatusOK, record(web.RecordReq{Loi: "lỗi hiển thị", ExecutionDate: date.UnixMilli()}))
	assert.Equal(t, http.StatusOK, record(web.RecordReq{CamNhan: "ổn"}))

	r, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/test-cases/%d/executions", id), nil)
	require.NoError(t, err)
	list := test.NewJSONResponseRecorder[web.ExecutionList]()
	s.server.ServeHTTP(list, r)
	require.Equal(t, http.StatusOK, list.Code)
	res := list.MustScan().Data
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Executions, 2)
	// 按照执行时间倒序，没传时间的那条是现在
	assert.Equal(t, "passed", res.Executions[0].Status)
	assert.Equal(t, tester.ID, res.Executions[0].TesterId)
	assert.Equal(t, "failed", res.Executions[1].Status)
	assert.Equal(t, date.UnixMilli(), res.Executions[1].ExecutionDate)

	// 用例不存在
	r, err = http.NewRequest(http.MethodPost, "/test-cases/99999/executions", iox.NewJSONReader(web.RecordReq{}))
	require.NoError(t, err)
	r.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, r)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	id := s.createCase("A", 1)
	s.addExecution(id, "", time.Now())
	require.NoError(t, s.dao.Assign(context.Background(), id, []int64{tester.ID}))

	r, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/test-cases/%d", id), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, r)
	require.Equal(t, http.StatusOK, recorder.Code)

	_, err = s.dao.GetById(context.Background(), id)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
	cnt, err := s.dao.CountExecutions(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
	ok, err := s.dao.IsAssigned(context.Background(), id, tester.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTestCaseHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

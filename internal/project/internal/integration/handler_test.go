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
	"github.com/ecodeclub/testhub/internal/project/internal/repository/dao"
	"github.com/ecodeclub/testhub/internal/project/internal/web"
	"github.com/ecodeclub/testhub/internal/test"
	testioc "github.com/ecodeclub/testhub/internal/test/ioc"
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
	dao       dao.ProjectDAO
	principal auth.Principal
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitSQLiteDB(s.T().Name())
	module := project.InitModule(s.db)
	server := test.NewServer().Engine
	server.Use(test.WithPrincipal(func() auth.Principal {
		return s.principal
	}))
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server)
	server.Use(middleware.NewCheckRoleMiddlewareBuilder(auth.RoleAdmin).Build())
	module.AdminHandler.PrivateRoutes(server)
	s.server = server
	s.dao = dao.NewGORMProjectDAO(s.db)
}

func (s *HandlerTestSuite) SetupTest() {
	s.principal = admin
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM projects").Error)
	require.NoError(s.T(), s.db.Exec("DELETE FROM project_accesses").Error)
}

func (s *HandlerTestSuite) createProject(name string) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	id, err := s.dao.Save(ctx, dao.Project{Name: name, Status: "active"})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		req      web.SaveReq
		wantCode int
	}{
		{
			name:     "新建",
			req:      web.SaveReq{Name: "Ví điện tử", Description: "app thanh toán"},
			wantCode: http.StatusOK,
		},
		{
			name:     "缺少名称",
			req:      web.SaveReq{Description: "app thanh toán"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "非法状态",
			req:      web.SaveReq{Name: "Ví điện tử", Status: "archived"},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			req, err := http.NewRequest(http.MethodPost, "/projects", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			id := recorder.MustScan().Data
			prj, err := s.dao.GetById(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tc.req.Name, prj.Name)
			assert.Equal(t, "active", prj.Status)
			assert.True(t, prj.Ctime > 0)
		})
	}
}

func (s *HandlerTestSuite) TestUpdate() {
	id := s.createProject("old")
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("/projects/%d", id),
		iox.NewJSONReader(web.SaveReq{Name: "new", Status: "inactive"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	prj, err := s.dao.GetById(context.Background(), id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "new", prj.Name)
	assert.Equal(s.T(), "inactive", prj.Status)

	req, err = http.NewRequest(http.MethodPut, "/projects/9999",
		iox.NewJSONReader(web.SaveReq{Name: "new"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestAccessAndVisibility() {
	t := s.T()
	p1 := s.createProject("p1")
	p2 := s.createProject("p2")

	// 授权测试人员访问 p1
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/access", p1),
		iox.NewJSONReader(web.AccessReq{UserIds: []int64{tester.ID}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	// 重复授权不会报错
	req, err = http.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/access", p1),
		iox.NewJSONReader(web.AccessReq{UserIds: []int64{tester.ID}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/access", p1), nil)
	require.NoError(t, err)
	members := test.NewJSONResponseRecorder[[]web.Member]()
	s.server.ServeHTTP(members, req)
	require.Equal(t, http.StatusOK, members.Code)
	ms := members.MustScan().Data
	require.Len(t, ms, 1)
	assert.Equal(t, tester.ID, ms[0].Uid)

	// 管理员能看到全部
	s.assertList(t, 2)

	s.principal = tester
	s.assertList(t, 1)
	s.assertDetail(t, p1, http.StatusOK)
	s.assertDetail(t, p2, http.StatusForbidden)
	s.assertDetail(t, 9999, http.StatusNotFound)

	// 测试人员不能管理项目
	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("/projects/%d", p1), nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	// 撤销之后就看不到了
	s.principal = admin
	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("/projects/%d/access/%d", p1, tester.ID), nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	s.principal = tester
	s.assertList(t, 0)
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	id := s.createProject("p1")
	require.NoError(t, s.dao.GrantAccess(context.Background(), id, []int64{2, 3}))

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	_, err = s.dao.GetById(context.Background(), id)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
	ms, err := s.dao.Members(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, ms, 0)
}

func (s *HandlerTestSuite) assertList(t *testing.T, want int) {
	req, err := http.NewRequest(http.MethodGet, "/projects", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ProjectList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, int64(want), res.Total)
	assert.Len(t, res.Projects, want)
}

func (s *HandlerTestSuite) assertDetail(t *testing.T, id int64, wantCode int) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d", id), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Project]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, wantCode, recorder.Code)
}

func TestProjectHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

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
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
	"github.com/ecodeclub/testhub/internal/pkg/middleware"
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/stats"
	"github.com/ecodeclub/testhub/internal/stats/internal/web"
	"github.com/ecodeclub/testhub/internal/test"
	testioc "github.com/ecodeclub/testhub/internal/test/ioc"
	"github.com/ecodeclub/testhub/internal/testcase"
	"github.com/ecodeclub/testhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	// initDB 为 nil 的时候使用内存 SQLite
	initDB    func() *egorm.Component
	server    *gin.Engine
	db        *egorm.Component
	userSvc   user.Service
	prjSvc    project.Service
	tcSvc     testcase.Service
	principal auth.Principal

	admin auth.Principal
	lan   auth.Principal
	minh  auth.Principal
	// p1 Lan 和 Minh 都有权限，p2 只有管理员能看
	p1, p2 int64
	// c1 Login 两次执行，c2 Thanh toán 一次失败，c3 没有执行，c4 在 p2 里面
	c1, c2, c3, c4 int64
}

func (s *HandlerTestSuite) SetupSuite() {
	if s.initDB != nil {
		s.db = s.initDB()
	} else {
		s.db = testioc.InitSQLiteDB(s.T().Name())
	}
	userModule := user.InitModule(s.db)
	prjModule := project.InitModule(s.db)
	tcModule := testcase.InitModule(s.db, prjModule)
	module := stats.InitModule(s.db, prjModule)

	server := test.NewServer().Engine
	server.Use(test.WithPrincipal(func() auth.Principal {
		return s.principal
	}))
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server)
	server.Use(middleware.NewCheckRoleMiddlewareBuilder(auth.RoleAdmin).Build())
	module.Hdl.AdminRoutes(server)
	s.server = server
	s.userSvc = userModule.Svc
	s.prjSvc = prjModule.Svc
	s.tcSvc = tcModule.Svc
}

func (s *HandlerTestSuite) SetupTest() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.admin = s.createUser(ctx, "Admin", "admin@testhub.com", auth.RoleAdmin)
	s.lan = s.createUser(ctx, "Lan", "lan@testhub.com", auth.RoleTester)
	s.minh = s.createUser(ctx, "Minh", "minh@testhub.com", auth.RoleTester)
	s.principal = s.admin

	var err error
	s.p1, err = s.prjSvc.Save(ctx, project.Project{Name: "Ví điện tử"})
	require.NoError(t, err)
	s.p2, err = s.prjSvc.Save(ctx, project.Project{Name: "CMS nội bộ"})
	require.NoError(t, err)
	require.NoError(t, s.prjSvc.GrantAccess(ctx, s.p1, []int64{s.lan.ID, s.minh.ID}))

	s.c1 = s.createCase(ctx, s.p1, "Login", "cao", "web", 3)
	s.c2 = s.createCase(ctx, s.p1, "Thanh toán", "trung bình", "app", 3)
	s.c3 = s.createCase(ctx, s.p1, "Login", "thấp", "cms", 3)
	s.c4 = s.createCase(ctx, s.p2, "Báo cáo", "cao", "cms", 1)
	require.NoError(t, s.tcSvc.Assign(ctx, s.c1, []int64{s.lan.ID}))
	require.NoError(t, s.tcSvc.Assign(ctx, s.c2, []int64{s.minh.ID}))

	now := time.Now()
	s.record(ctx, s.lan, s.c1, "crash khi bấm đăng nhập", now.Add(-24*time.Hour))
	s.record(ctx, s.lan, s.c1, "  ", now)
	s.record(ctx, s.minh, s.c2, "sai số tiền", now.AddDate(0, 0, -10))
	s.record(ctx, s.admin, s.c4, "", now)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"users", "projects", "project_accesses",
		"test_cases", "executions", "test_assignments"} {
		require.NoError(s.T(), s.db.Exec("DELETE FROM "+table).Error)
	}
}

func (s *HandlerTestSuite) createUser(ctx context.Context, name, email string, role auth.Role) auth.Principal {
	id, err := s.userSvc.Create(ctx, user.User{
		Name:     name,
		Email:    email,
		Password: "123456",
		Role:     role,
	})
	require.NoError(s.T(), err)
	return auth.Principal{ID: id, Role: role, Email: email}
}

func (s *HandlerTestSuite) createCase(ctx context.Context, pid int64, hangMuc, priority, platform string, required int64) int64 {
	id, err := s.tcSvc.Save(ctx, testcase.TestCase{
		ProjectId:     pid,
		HangMuc:       hangMuc,
		TinhNang:      "chức năng " + hangMuc,
		SoLanPhaiTest: required,
		Priority:      testcase.Priority(priority),
		Platform:      testcase.Platform(platform),
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) record(ctx context.Context, p auth.Principal, caseId int64, loi string, at time.Time) {
	_, err := s.tcSvc.Record(ctx, p, testcase.Execution{
		TestCaseId:    caseId,
		Loi:           loi,
		ExecutionDate: at,
	})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(s.T(), err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func getJSON[T any](s *HandlerTestSuite, path string) (int, T) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		var zero T
		return recorder.Code, zero
	}
	return recorder.Code, recorder.MustScan().Data
}

func sumTotal(points []web.TrendPoint) int64 {
	var res int64
	for _, p := range points {
		res += p.Total
	}
	return res
}

func (s *HandlerTestSuite) TestDashboard() {
	testCases := []struct {
		name      string
		principal func() auth.Principal
		query     func() string
		wantCode  int
		assert    func(t *testing.T, res web.Dashboard)
	}{
		{
			name:      "管理员指定项目",
			principal: func() auth.Principal { return s.admin },
			query:     func() string { return fmt.Sprintf("?project_id=%d", s.p1) },
			wantCode:  http.StatusOK,
			assert: func(t *testing.T, res web.Dashboard) {
				assert.Equal(t, int64(3), res.TotalTestCases)
				assert.Equal(t, int64(3), res.TotalExecutions)
				assert.Equal(t, int64(2), res.TotalIssues)
				assert.Equal(t, int64(2), res.TotalUsers)
				// 十天前的那次不在趋势里面
				require.Len(t, res.ExecutionTrend, 7)
				assert.Equal(t, int64(2), sumTotal(res.ExecutionTrend))
				last := res.ExecutionTrend[6]
				assert.Equal(t, time.Now().Format(time.DateOnly), last.Date)
				assert.Equal(t, int64(1), last.Passed)
				assert.Equal(t, []web.StatusCount{
					{Status: "completed", Label: "Hoàn thành", Count: 0},
					{Status: "in_progress", Label: "Đang test", Count: 2},
					{Status: "not_started", Label: "Chưa test", Count: 1},
				}, res.StatusDistribution)
				require.Len(t, res.UserPerformance, 2)
				assert.Equal(t, "Lan", res.UserPerformance[0].Name)
				assert.Equal(t, int64(2), res.UserPerformance[0].Executions)
				assert.Equal(t, 50, res.UserPerformance[0].PassRate)
				require.Len(t, res.RecentActivity, 3)
				assert.Equal(t, "passed", res.RecentActivity[0].Status)
				assert.Equal(t, "Lan đã test \"Login - chức năng Login\" (Passed)", res.RecentActivity[0].Description)
			},
		},
		{
			name:      "管理员不指定项目",
			principal: func() auth.Principal { return s.admin },
			query:     func() string { return "" },
			wantCode:  http.StatusOK,
			assert: func(t *testing.T, res web.Dashboard) {
				assert.Equal(t, int64(4), res.TotalTestCases)
				assert.Equal(t, int64(4), res.TotalExecutions)
			},
		},
		{
			name:      "测试人员只能看到有权限的项目",
			principal: func() auth.Principal { return s.lan },
			query:     func() string { return "" },
			wantCode:  http.StatusOK,
			assert: func(t *testing.T, res web.Dashboard) {
				assert.Equal(t, int64(3), res.TotalTestCases)
				assert.Equal(t, int64(3), res.TotalExecutions)
			},
		},
		{
			name:      "测试人员指定没有权限的项目",
			principal: func() auth.Principal { return s.lan },
			query:     func() string { return fmt.Sprintf("?project_id=%d", s.p2) },
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "项目不存在",
			principal: func() auth.Principal { return s.admin },
			query:     func() string { return "?project_id=99999" },
			wantCode:  http.StatusOK,
			assert: func(t *testing.T, res web.Dashboard) {
				assert.Equal(t, int64(0), res.TotalTestCases)
				assert.Equal(t, int64(0), res.TotalExecutions)
				assert.Equal(t, int64(0), res.TotalUsers)
				assert.Len(t, res.ExecutionTrend, 7)
				assert.Len(t, res.StatusDistribution, 3)
				assert.Empty(t, res.RecentActivity)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.principal = tc.principal()
			code, res := getJSON[web.Dashboard](s, "/dashboard/stats"+tc.query())
			require.Equal(t, tc.wantCode, code)
			if tc.assert != nil {
				tc.assert(t, res)
			}
		})
	}
}

func (s *HandlerTestSuite) TestDashboardIdempotent() {
	path := fmt.Sprintf("/dashboard/stats?project_id=%d", s.p1)
	_, first := getJSON[web.Dashboard](s, path)
	_, second := getJSON[web.Dashboard](s, path)
	assert.Equal(s.T(), first, second)
}

func (s *HandlerTestSuite) TestDetailed() {
	code, res := getJSON[web.Detailed](s, fmt.Sprintf("/stats/detailed?project_id=%d", s.p1))
	require.Equal(s.T(), http.StatusOK, code)
	assert.Len(s.T(), res.TimeStats.Daily, 30)
	assert.Len(s.T(), res.TimeStats.Weekly, 12)
	assert.Len(s.T(), res.TimeStats.Monthly, 12)
	assert.Equal(s.T(), int64(3), sumTotal(res.TimeStats.Daily))
	assert.Equal(s.T(), time.Now().Format("2006-01"), res.TimeStats.Monthly[11].Date)
	y, w := time.Now().ISOWeek()
	assert.Equal(s.T(), fmt.Sprintf("%d-W%02d", y, w), res.TimeStats.Weekly[11].Date)

	assert.Equal(s.T(), []web.CategoryStat{
		{HangMuc: "Login", TotalCases: 2, InProgress: 1, NotStarted: 1, Issues: 1},
		{HangMuc: "Thanh toán", TotalCases: 1, InProgress: 1, Issues: 1},
	}, res.CategoryStats)
	priorities := make([]string, 0, len(res.PriorityStats))
	for _, p := range res.PriorityStats {
		priorities = append(priorities, p.Priority)
	}
	assert.Equal(s.T(), []string{"cao", "trung bình", "thấp"}, priorities)
}

func (s *HandlerTestSuite) TestTesters() {
	s.principal = s.lan
	code, _ := getJSON[web.Testers](s, "/stats/testers")
	assert.Equal(s.T(), http.StatusForbidden, code)

	s.principal = s.admin
	code, res := getJSON[web.Testers](s, "/stats/testers")
	require.Equal(s.T(), http.StatusOK, code)
	status := make(map[string]string, len(res.TesterStats))
	for _, st := range res.TesterStats {
		status[st.Name] = st.Status
	}
	assert.Equal(s.T(), map[string]string{
		"Lan":  casestatus.TesterActive,
		"Minh": casestatus.TesterInactive,
	}, status)
	require.Len(s.T(), res.ProjectTesterStats, 2)
	p1 := res.ProjectTesterStats[0]
	assert.Equal(s.T(), s.p1, p1.ProjectId)
	assert.Equal(s.T(), int64(2), p1.TotalTesters)
	assert.Equal(s.T(), int64(1), p1.ActiveTesters)
	assert.Equal(s.T(), int64(3), p1.TotalExecutions)
	assert.Equal(s.T(), int64(2), p1.TotalIssues)
}

func (s *HandlerTestSuite) TestTestCase() {
	s.principal = s.lan
	code, res := getJSON[web.TestCaseStats](s, fmt.Sprintf("/test-cases/%d/stats", s.c1))
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), s.c1, res.TestCase.Id)
	assert.Equal(s.T(), web.CaseStats{
		TotalExecutions: 2,
		Passed:          1,
		Failed:          1,
		CompletionRate:  67,
		PassRate:        50,
		Remaining:       1,
		UniqueTesters:   1,
		CurrentStatus:   "passed",
	}, res.Stats)
	require.Len(s.T(), res.ExecutionHistory, 2)
	assert.Equal(s.T(), "passed", res.ExecutionHistory[0].Status)
	assert.Equal(s.T(), "failed", res.ExecutionHistory[1].Status)
	assert.Len(s.T(), res.TrendData, 30)
	assert.Equal(s.T(), int64(2), sumTotal(res.TrendData))
	assert.Equal(s.T(), []web.Member{{Id: s.lan.ID, Name: "Lan", Email: "lan@testhub.com"}}, res.AssignedTesters)
	require.Len(s.T(), res.TesterStats, 1)
	assert.Equal(s.T(), s.lan.ID, res.TesterStats[0].Id)

	// 分配了但是还没执行过的人出现在 tester_stats 里面，但是不计入 unique_testers
	ctx := context.Background()
	require.NoError(s.T(), s.tcSvc.Assign(ctx, s.c1, []int64{s.minh.ID}))
	defer func() {
		require.NoError(s.T(), s.tcSvc.Unassign(ctx, s.c1, s.minh.ID))
	}()
	code, res = getJSON[web.TestCaseStats](s, fmt.Sprintf("/test-cases/%d/stats", s.c1))
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), 1, res.Stats.UniqueTesters)
	assert.Len(s.T(), res.AssignedTesters, 2)
	assert.Equal(s.T(), []web.CaseTester{
		{Id: s.lan.ID, Name: "Lan", Executions: 2, Passed: 1, Failed: 1, PassRate: 50},
		{Id: s.minh.ID, Name: "Minh"},
	}, res.TesterStats)

	code, _ = getJSON[web.TestCaseStats](s, "/test-cases/99999/stats")
	assert.Equal(s.T(), http.StatusNotFound, code)
	code, _ = getJSON[web.TestCaseStats](s, fmt.Sprintf("/test-cases/%d/stats", s.c4))
	assert.Equal(s.T(), http.StatusForbidden, code)
}

func (s *HandlerTestSuite) TestProject() {
	code, res := getJSON[web.ProjectStats](s, fmt.Sprintf("/project/%d/stats", s.p1))
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), web.ProjectCaseStats{Total: 3, Passed: 1, Failed: 1, Pending: 1}, res.TestCaseStats)
	assert.Equal(s.T(), web.ProjectTesters{Total: 2, Active: 1}, res.TesterStats)
	assert.Equal(s.T(), []web.GroupStat{
		{Name: "app", Total: 1, Failed: 1},
		{Name: "web", Total: 2, Passed: 1, Failed: 1},
	}, res.PlatformStats)
	require.Len(s.T(), res.PriorityStats, 2)
	assert.Equal(s.T(), "cao", res.PriorityStats[0].Name)
	assert.Len(s.T(), res.TrendData, 7)

	code, res = getJSON[web.ProjectStats](s, "/project/99999/stats")
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), web.ProjectCaseStats{}, res.TestCaseStats)
}

func (s *HandlerTestSuite) TestExport() {
	recorder := s.get(fmt.Sprintf("/export/project-report/%d?format=csv", s.p1))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Contains(s.T(), recorder.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(s.T(), recorder.Header().Get("Content-Disposition"),
		fmt.Sprintf("project-%d-report-", s.p1))
	body := recorder.Body.String()
	assert.True(s.T(), strings.HasPrefix(body, "\ufeffID,Hạng mục,"))
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(s.T(), lines, 4)
	assert.True(s.T(), strings.HasPrefix(lines[1], fmt.Sprintf("%d,Login,chức năng Login,cao,web,3,2,1,1,Đang test,", s.c1)))

	recorder = s.get("/export/project-report/99999")
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Len(s.T(), strings.Split(strings.TrimSuffix(recorder.Body.String(), "\n"), "\n"), 1)

	recorder = s.get(fmt.Sprintf("/export/project-report/%d?format=pdf", s.p1))
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

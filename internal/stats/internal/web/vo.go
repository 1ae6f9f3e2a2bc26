package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
)

type TrendPoint struct {
	Date   string `json:"date"`
	Total  int64  `json:"total"`
	Passed int64  `json:"passed"`
	Failed int64  `json:"failed"`
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int64  `json:"count"`
}

type UserPerformance struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Executions    int64  `json:"executions"`
	Passed        int64  `json:"passed"`
	Issues        int64  `json:"issues"`
	PassRate      int    `json:"passRate"`
	LastExecution int64  `json:"lastExecution"`
}

type Activity struct {
	Id            int64  `json:"id"`
	TestCaseId    int64  `json:"testCaseId"`
	HangMuc       string `json:"hangMuc"`
	TinhNang      string `json:"tinhNang"`
	TesterId      int64  `json:"testerId"`
	TesterName    string `json:"testerName"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	ExecutionDate int64  `json:"executionDate"`
}

type Dashboard struct {
	TotalTestCases     int64             `json:"totalTestCases"`
	TotalExecutions    int64             `json:"totalExecutions"`
	TotalUsers         int64             `json:"totalUsers"`
	TotalIssues        int64             `json:"totalIssues"`
	ExecutionTrend     []TrendPoint      `json:"executionTrend"`
	StatusDistribution []StatusCount     `json:"statusDistribution"`
	UserPerformance    []UserPerformance `json:"userPerformance"`
	RecentActivity     []Activity        `json:"recentActivity"`
}

type TimeStats struct {
	Daily   []TrendPoint `json:"daily"`
	Weekly  []TrendPoint `json:"weekly"`
	Monthly []TrendPoint `json:"monthly"`
}

type CategoryStat struct {
	HangMuc    string `json:"hangMuc"`
	TotalCases int64  `json:"totalCases"`
	Completed  int64  `json:"completed"`
	InProgress int64  `json:"inProgress"`
	NotStarted int64  `json:"notStarted"`
	Issues     int64  `json:"issues"`
}

type PriorityStat struct {
	Priority  string `json:"priority"`
	Count     int64  `json:"count"`
	Completed int64  `json:"completed"`
	Issues    int64  `json:"issues"`
}

type Detailed struct {
	TimeStats     TimeStats         `json:"timeStats"`
	CategoryStats []CategoryStat    `json:"categoryStats"`
	PriorityStats []PriorityStat    `json:"priorityStats"`
	UserStats     []UserPerformance `json:"userStats"`
}

type TesterStat struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	TotalExecutions int64  `json:"totalExecutions"`
	TotalIssues     int64  `json:"totalIssues"`
	UniqueTestCases int64  `json:"uniqueTestCases"`
	LastExecution   int64  `json:"lastExecutionDate"`
	Status          string `json:"status"`
}

type ProjectTesterStat struct {
	ProjectId       int64  `json:"projectId"`
	ProjectName     string `json:"projectName"`
	TotalTesters    int64  `json:"totalTesters"`
	ActiveTesters   int64  `json:"activeTesters"`
	TotalExecutions int64  `json:"totalExecutions"`
	TotalIssues     int64  `json:"totalIssues"`
}

type Testers struct {
	TesterStats        []TesterStat        `json:"testerStats"`
	ProjectTesterStats []ProjectTesterStat `json:"projectTesterStats"`
}

// 下面是单个用例的统计，字段沿用 snake_case

type TestCase struct {
	Id            int64  `json:"id"`
	ProjectId     int64  `json:"project_id"`
	ProjectName   string `json:"project_name"`
	HangMuc       string `json:"hang_muc"`
	TinhNang      string `json:"tinh_nang"`
	SoLanPhaiTest int64  `json:"so_lan_phai_test"`
	Priority      string `json:"priority"`
	Platform      string `json:"platform"`
	CreatedAt     int64  `json:"created_at"`
}

type CaseStats struct {
	TotalExecutions int64  `json:"total_executions"`
	Passed          int64  `json:"passed"`
	Failed          int64  `json:"failed"`
	CompletionRate  int    `json:"completion_rate"`
	PassRate        int    `json:"pass_rate"`
	Remaining       int64  `json:"remaining"`
	UniqueTesters   int    `json:"unique_testers"`
	CurrentStatus   string `json:"current_status"`
}

type HistoryItem struct {
	Id            int64  `json:"id"`
	TesterId      int64  `json:"tester_id"`
	TesterName    string `json:"tester_name"`
	Loi           string `json:"loi"`
	CamNhan       string `json:"cam_nhan"`
	Status        string `json:"status"`
	ExecutionDate int64  `json:"execution_date"`
}

type CaseTester struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	Executions int64  `json:"executions"`
	Passed     int64  `json:"passed"`
	Failed     int64  `json:"failed"`
	PassRate   int    `json:"pass_rate"`
}

type Member struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TestCaseStats struct {
	TestCase         TestCase      `json:"test_case"`
	Stats            CaseStats     `json:"stats"`
	ExecutionHistory []HistoryItem `json:"execution_history"`
	TesterStats      []CaseTester  `json:"tester_stats"`
	TrendData        []TrendPoint  `json:"trend_data"`
	AssignedTesters  []Member      `json:"assigned_testers"`
}

type GroupStat struct {
	Name   string `json:"name"`
	Total  int64  `json:"total"`
	Passed int64  `json:"passed"`
	Failed int64  `json:"failed"`
}

type ProjectCaseStats struct {
	Total   int64 `json:"total"`
	Passed  int64 `json:"passed"`
	Failed  int64 `json:"failed"`
	Pending int64 `json:"pending"`
}

type ProjectTesters struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type ProjectStats struct {
	ProjectId     int64            `json:"projectId"`
	TestCaseStats ProjectCaseStats `json:"testCaseStats"`
	TesterStats   ProjectTesters   `json:"testerStats"`
	PlatformStats []GroupStat      `json:"platformStats"`
	PriorityStats []GroupStat      `json:"priorityStats"`
	TrendData     []TrendPoint     `json:"trendData"`
}

func newTrend(bs []domain.Bucket) []TrendPoint {
	return slice.Map(bs, func(idx int, src domain.Bucket) TrendPoint {
		return TrendPoint{
			Date:   src.Label,
			Total:  src.Total,
			Passed: src.Passed(),
			Failed: src.Failed,
		}
	})
}

func newUserPerformance(src domain.UserPerformance) UserPerformance {
	return UserPerformance{
		Id:            src.Uid,
		Name:          src.Name,
		Executions:    src.Executions,
		Passed:        src.Passed(),
		Issues:        src.Issues,
		PassRate:      casestatus.PassRate(src.Passed(), src.Executions),
		LastExecution: millis(src.LastExecution),
	}
}

func newUserPerformances(src []domain.UserPerformance) []UserPerformance {
	return slice.Map(src, func(idx int, src domain.UserPerformance) UserPerformance {
		return newUserPerformance(src)
	})
}

func newDashboard(d domain.Dashboard) Dashboard {
	return Dashboard{
		TotalTestCases:  d.TotalTestCases,
		TotalExecutions: d.TotalExecutions,
		TotalUsers:      d.TotalUsers,
		TotalIssues:     d.TotalIssues,
		ExecutionTrend:  newTrend(d.ExecutionTrend),
		StatusDistribution: slice.Map(d.StatusDistribution, func(idx int, src domain.StatusCount) StatusCount {
			return StatusCount{
				Status: src.Status.String(),
				Label:  src.Status.Label(),
				Count:  src.Count,
			}
		}),
		UserPerformance: newUserPerformances(d.UserPerformance),
		RecentActivity: slice.Map(d.RecentActivity, func(idx int, src domain.Activity) Activity {
			return Activity{
				Id:            src.Id,
				TestCaseId:    src.TestCaseId,
				HangMuc:       src.HangMuc,
				TinhNang:      src.TinhNang,
				TesterId:      src.TesterId,
				TesterName:    src.TesterName,
				Status:        src.Status().String(),
				Description:   src.Description(),
				ExecutionDate: millis(src.ExecutionDate),
			}
		}),
	}
}

func newDetailed(d domain.Detailed) Detailed {
	return Detailed{
		TimeStats: TimeStats{
			Daily:   newTrend(d.Daily),
			Weekly:  newTrend(d.Weekly),
			Monthly: newTrend(d.Monthly),
		},
		CategoryStats: slice.Map(d.Categories, func(idx int, src domain.CategoryStat) CategoryStat {
			return CategoryStat{
				HangMuc:    src.HangMuc,
				TotalCases: src.TotalCases,
				Completed:  src.Completed,
				InProgress: src.InProgress,
				NotStarted: src.NotStarted,
				Issues:     src.Issues,
			}
		}),
		PriorityStats: slice.Map(d.Priorities, func(idx int, src domain.PriorityStat) PriorityStat {
			return PriorityStat{
				Priority:  src.Priority,
				Count:     src.Count,
				Completed: src.Completed,
				Issues:    src.Issues,
			}
		}),
		UserStats: newUserPerformances(d.Users),
	}
}

func newTesters(t domain.Testers) Testers {
	return Testers{
		TesterStats: slice.Map(t.Testers, func(idx int, src domain.TesterStat) TesterStat {
			return TesterStat{
				Id:              src.Uid,
				Name:            src.Name,
				Email:           src.Email,
				TotalExecutions: src.TotalExecutions,
				TotalIssues:     src.TotalIssues,
				UniqueTestCases: src.UniqueTestCases,
				LastExecution:   millis(src.LastExecution),
				Status:          src.Status,
			}
		}),
		ProjectTesterStats: slice.Map(t.Projects, func(idx int, src domain.ProjectTesterStat) ProjectTesterStat {
			return ProjectTesterStat{
				ProjectId:       src.ProjectId,
				ProjectName:     src.ProjectName,
				TotalTesters:    src.TotalTesters,
				ActiveTesters:   src.ActiveTesters,
				TotalExecutions: src.TotalExecutions,
				TotalIssues:     src.TotalIssues,
			}
		}),
	}
}

func newTestCaseStats(s domain.TestCaseStats) TestCaseStats {
	tc := s.TestCase
	return TestCaseStats{
		TestCase: TestCase{
			Id:            tc.Id,
			ProjectId:     tc.ProjectId,
			ProjectName:   tc.ProjectName,
			HangMuc:       tc.HangMuc,
			TinhNang:      tc.TinhNang,
			SoLanPhaiTest: tc.SoLanPhaiTest,
			Priority:      tc.Priority,
			Platform:      tc.Platform,
			CreatedAt:     millis(tc.Ctime),
		},
		Stats: CaseStats{
			TotalExecutions: s.Total,
			Passed:          s.Passed,
			Failed:          s.Failed,
			CompletionRate:  s.CompletionRate,
			PassRate:        s.PassRate,
			Remaining:       s.Remaining,
			UniqueTesters:   s.UniqueTesters,
			CurrentStatus:   s.CurrentStatus.String(),
		},
		ExecutionHistory: slice.Map(s.History, func(idx int, src domain.Activity) HistoryItem {
			return HistoryItem{
				Id:            src.Id,
				TesterId:      src.TesterId,
				TesterName:    src.TesterName,
				Loi:           src.Loi,
				CamNhan:       src.CamNhan,
				Status:        src.Status().String(),
				ExecutionDate: millis(src.ExecutionDate),
			}
		}),
		TesterStats: slice.Map(s.Testers, func(idx int, src domain.UserPerformance) CaseTester {
			return CaseTester{
				Id:         src.Uid,
				Name:       src.Name,
				Executions: src.Executions,
				Passed:     src.Passed(),
				Failed:     src.Issues,
				PassRate:   casestatus.PassRate(src.Passed(), src.Executions),
			}
		}),
		TrendData: newTrend(s.Trend),
		AssignedTesters: slice.Map(s.Assigned, func(idx int, src domain.Member) Member {
			return Member{
				Id:    src.Id,
				Name:  src.Name,
				Email: src.Email,
			}
		}),
	}
}

func newGroups(gs []domain.GroupStat) []GroupStat {
	return slice.Map(gs, func(idx int, src domain.GroupStat) GroupStat {
		return GroupStat{
			Name:   src.Name,
			Total:  src.Total,
			Passed: src.Passed(),
			Failed: src.Failed,
		}
	})
}

func newProjectStats(p domain.ProjectStats) ProjectStats {
	return ProjectStats{
		ProjectId: p.ProjectId,
		TestCaseStats: ProjectCaseStats{
			Total:   p.TotalTestCases,
			Passed:  p.Passed,
			Failed:  p.Failed,
			Pending: p.Pending,
		},
		TesterStats: ProjectTesters{
			Total:  p.TotalTesters,
			Active: p.ActiveTesters,
		},
		PlatformStats: newGroups(p.Platforms),
		PriorityStats: newGroups(p.Priorities),
		TrendData:     newTrend(p.Trend),
	}
}

// millis 零值返回 0
func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

package web

import (
	"strings"
	"time"

	"github.com/ecodeclub/testhub/internal/testcase/internal/domain"
)

type TestCase struct {
	Id            int64  `json:"id"`
	ProjectId     int64  `json:"project_id"`
	HangMuc       string `json:"hang_muc"`
	TinhNang      string `json:"tinh_nang"`
	SoLanPhaiTest int64  `json:"so_lan_phai_test"`
	Priority      string `json:"priority"`
	Platform      string `json:"platform"`
	CreatedAt     int64  `json:"created_at"`
}

func newTestCase(tc domain.TestCase) TestCase {
	return TestCase{
		Id:            tc.Id,
		ProjectId:     tc.ProjectId,
		HangMuc:       tc.HangMuc,
		TinhNang:      tc.TinhNang,
		SoLanPhaiTest: tc.SoLanPhaiTest,
		Priority:      tc.Priority.String(),
		Platform:      tc.Platform.String(),
		CreatedAt:     tc.Ctime.UnixMilli(),
	}
}

type Summary struct {
	TestCase
	ExecutionCount int64  `json:"execution_count"`
	CurrentStatus  string `json:"current_status"`
	CompletionRate int    `json:"completion_rate"`
}

func newSummary(s domain.Summary) Summary {
	return Summary{
		TestCase:       newTestCase(s.TestCase),
		ExecutionCount: s.ExecutionCount,
		CurrentStatus:  s.CurrentStatus.String(),
		CompletionRate: s.CompletionRate,
	}
}

type SummaryList struct {
	TestCases []Summary `json:"test_cases"`
	Total     int64     `json:"total"`
}

type SaveReq struct {
	ProjectId     int64  `json:"project_id"`
	HangMuc       string `json:"hang_muc"`
	TinhNang      string `json:"tinh_nang"`
	SoLanPhaiTest int64  `json:"so_lan_phai_test"`
	Priority      string `json:"priority"`
	Platform      string `json:"platform"`
}

func (r SaveReq) toDomain() domain.TestCase {
	return domain.TestCase{
		ProjectId:     r.ProjectId,
		HangMuc:       strings.TrimSpace(r.HangMuc),
		TinhNang:      r.TinhNang,
		SoLanPhaiTest: r.SoLanPhaiTest,
		Priority:      domain.Priority(r.Priority),
		Platform:      domain.Platform(r.Platform),
	}
}

// valid 更新的时候不需要 project_id
func (r SaveReq) valid(create bool) bool {
	tc := r.toDomain()
	if create && tc.ProjectId <= 0 {
		return false
	}
	return tc.HangMuc != "" &&
		tc.SoLanPhaiTest >= 1 &&
		tc.Priority.Valid() &&
		tc.Platform.Valid()
}

type AssignReq struct {
	UserIds []int64 `json:"user_ids"`
}

type RecordReq struct {
	Loi     string `json:"loi"`
	CamNhan string `json:"cam_nhan"`
	// ExecutionDate 毫秒，不传就是当前时间
	ExecutionDate int64 `json:"execution_date"`
}

type Execution struct {
	Id            int64  `json:"id"`
	TestCaseId    int64  `json:"test_case_id"`
	TesterId      int64  `json:"tester_id"`
	Loi           string `json:"loi"`
	CamNhan       string `json:"cam_nhan"`
	Status        string `json:"status"`
	ExecutionDate int64  `json:"execution_date"`
	CreatedAt     int64  `json:"created_at"`
}

func newExecution(e domain.Execution) Execution {
	status := "passed"
	if e.Failed() {
		status = "failed"
	}
	return Execution{
		Id:            e.Id,
		TestCaseId:    e.TestCaseId,
		TesterId:      e.TesterId,
		Loi:           e.Loi,
		CamNhan:       e.CamNhan,
		Status:        status,
		ExecutionDate: e.ExecutionDate.UnixMilli(),
		CreatedAt:     e.Ctime.UnixMilli(),
	}
}

type ExecutionList struct {
	Executions []Execution `json:"executions"`
	Total      int64       `json:"total"`
}

func toTime(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}

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
package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
	"github.com/ecodeclub/testhub/internal/stats/internal/repository/dao"
)

var ErrTestCaseNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/stats.mock.go StatsRepository

// StatsRepository 只读，每个方法对应一次查询
type StatsRepository interface {
	CountTestCases(ctx context.Context, scope domain.Scope) (int64, error)
	// CountExecutions 返回执行次数和问题数
	CountExecutions(ctx context.Context, scope domain.Scope) (int64, int64, error)
	CountAccessUsers(ctx context.Context, scope domain.Scope) (int64, error)
	CountActiveTesters(ctx context.Context, scope domain.Scope, since time.Time) (int64, error)
	Points(ctx context.Context, scope domain.Scope, start, end time.Time) ([]domain.Point, error)
	Cases(ctx context.Context, scope domain.Scope) ([]domain.CaseInfo, error)
	// CaseInfo 不存在的时候返回 ErrTestCaseNotFound
	CaseInfo(ctx context.Context, id int64) (domain.CaseInfo, error)
	UserPerformance(ctx context.Context, scope domain.Scope, limit int) ([]domain.UserPerformance, error)
	Activities(ctx context.Context, scope domain.Scope, limit int) ([]domain.Activity, error)
	Testers(ctx context.Context) ([]domain.TesterStat, error)
	ProjectTesters(ctx context.Context, since time.Time) ([]domain.ProjectTesterStat, error)
	// LatestLoi 每个用例最近一次执行的错误描述，时间相同的取 id 最大的
	LatestLoi(ctx context.Context, scope domain.Scope) (map[int64]string, error)
	Groups(ctx context.Context, scope domain.Scope, col dao.GroupColumn) ([]domain.GroupStat, error)
	AssignedTesters(ctx context.Context, caseId int64) ([]domain.Member, error)
}

var _ StatsRepository = &statsRepository{}

type statsRepository struct {
	dao dao.StatsDAO
}

func NewStatsRepository(d dao.StatsDAO) StatsRepository {
	return &statsRepository{dao: d}
}

func (repo *statsRepository) CountTestCases(ctx context.Context, scope domain.Scope) (int64, error) {
	return repo.dao.CountTestCases(ctx, repo.filter(scope))
}

func (repo *statsRepository) CountExecutions(ctx context.Context, scope domain.Scope) (int64, int64, error) {
	res, err := repo.dao.CountExecutions(ctx, repo.filter(scope))
	return res.Total, res.Issues, err
}

func (repo *statsRepository) CountAccessUsers(ctx context.Context, scope domain.Scope) (int64, error) {
	return repo.dao.CountAccessUsers(ctx, repo.filter(scope))
}

func (repo *statsRepository) CountActiveTesters(ctx context.Context, scope domain.Scope, since time.Time) (int64, error) {
	return repo.dao.CountActiveTesters(ctx, repo.filter(scope), since.UnixMilli())
}

func (repo *statsRepository) Points(ctx context.Context, scope domain.Scope, start, end time.Time) ([]domain.Point, error) {
	rows, err := repo.dao.Points(ctx, repo.filter(scope), start.UnixMilli(), end.UnixMilli())
	return slice.Map(rows, func(idx int, src dao.PointRow) domain.Point {
		return domain.Point{
			At:     time.UnixMilli(src.ExecutionDate),
			Failed: src.Issue > 0,
		}
	}), err
}

func (repo *statsRepository) Cases(ctx context.Context, scope domain.Scope) ([]domain.CaseInfo, error) {
	rows, err := repo.dao.Cases(ctx, repo.filter(scope))
	return slice.Map(rows, func(idx int, src dao.CaseRow) domain.CaseInfo {
		return repo.toCaseInfo(src)
	}), err
}

func (repo *statsRepository) CaseInfo(ctx context.Context, id int64) (domain.CaseInfo, error) {
	rows, err := repo.dao.Cases(ctx, dao.Filter{TestCaseId: id})
	if err != nil {
		return domain.CaseInfo{}, err
	}
	if len(rows) == 0 {
		return domain.CaseInfo{}, ErrTestCaseNotFound
	}
	return repo.toCaseInfo(rows[0]), nil
}

func (repo *statsRepository) UserPerformance(ctx context.Context, scope domain.Scope, limit int) ([]domain.UserPerformance, error) {
	rows, err := repo.dao.UserPerformance(ctx, repo.filter(scope), scope.ProjectId, limit)
	return slice.Map(rows, func(idx int, src dao.UserPerfRow) domain.UserPerformance {
		return domain.UserPerformance{
			Uid:           src.Uid,
			Name:          src.Name,
			Executions:    src.Executions,
			Issues:        src.Issues,
			LastExecution: toTime(src.LastExecutionDate),
		}
	}), err
}

func (repo *statsRepository) Activities(ctx context.Context, scope domain.Scope, limit int) ([]domain.Activity, error) {
	rows, err := repo.dao.Activities(ctx, repo.filter(scope), limit)
	return slice.Map(rows, func(idx int, src dao.ActivityRow) domain.Activity {
		return domain.Activity{
			Id:            src.Id,
			TestCaseId:    src.TestCaseId,
			HangMuc:       src.HangMuc,
			TinhNang:      src.TinhNang,
			TesterId:      src.TesterId,
			TesterName:    src.TesterName,
			Loi:           src.Loi,
			CamNhan:       src.CamNhan,
			ExecutionDate: toTime(src.ExecutionDate),
		}
	}), err
}

func (repo *statsRepository) Testers(ctx context.Context) ([]domain.TesterStat, error) {
	rows, err := repo.dao.Testers(ctx)
	return slice.Map(rows, func(idx int, src dao.TesterRow) domain.TesterStat {
		return domain.TesterStat{
			Uid:             src.Uid,
			Name:            src.Name,
			Email:           src.Email,
			TotalExecutions: src.TotalExecutions,
			TotalIssues:     src.TotalIssues,
			UniqueTestCases: src.UniqueTestCases,
			LastExecution:   toTime(src.LastExecutionDate),
		}
	}), err
}

func (repo *statsRepository) ProjectTesters(ctx context.Context, since time.Time) ([]domain.ProjectTesterStat, error) {
	rows, err := repo.dao.ProjectTesters(ctx, since.UnixMilli())
	return slice.Map(rows, func(idx int, src dao.ProjectTesterRow) domain.ProjectTesterStat {
		return domain.ProjectTesterStat{
			ProjectId:       src.ProjectId,
			ProjectName:     src.ProjectName,
			TotalTesters:    src.TotalTesters,
			ActiveTesters:   src.ActiveTesters,
			TotalExecutions: src.TotalExecutions,
			TotalIssues:     src.TotalIssues,
		}
	}), err
}

func (repo *statsRepository) LatestLoi(ctx context.Context, scope domain.Scope) (map[int64]string, error) {
	rows, err := repo.dao.LatestExecutions(ctx, repo.filter(scope))
	if err != nil {
		return nil, err
	}
	// rows 按照 id 升序，后面的覆盖前面的
	res := make(map[int64]string, len(rows))
	for _, r := range rows {
		res[r.TestCaseId] = r.Loi
	}
	return res, nil
}

func (repo *statsRepository) Groups(ctx context.Context, scope domain.Scope, col dao.GroupColumn) ([]domain.GroupStat, error) {
	rows, err := repo.dao.Groups(ctx, repo.filter(scope), col)
	return slice.Map(rows, func(idx int, src dao.GroupRow) domain.GroupStat {
		return domain.GroupStat{
			Name:   src.Name,
			Total:  src.Total,
			Failed: src.Issues,
		}
	}), err
}

func (repo *statsRepository) AssignedTesters(ctx context.Context, caseId int64) ([]domain.Member, error) {
	rows, err := repo.dao.AssignedTesters(ctx, caseId)
	return slice.Map(rows, func(idx int, src dao.MemberRow) domain.Member {
		return domain.Member{
			Id:    src.Id,
			Name:  src.Name,
			Email: src.Email,
		}
	}), err
}

func (repo *statsRepository) filter(scope domain.Scope) dao.Filter {
	return dao.Filter{
		ProjectIds: scope.ProjectIds,
		TestCaseId: scope.TestCaseId,
	}
}

func (repo *statsRepository) toCaseInfo(src dao.CaseRow) domain.CaseInfo {
	return domain.CaseInfo{
		Id:            src.Id,
		ProjectId:     src.ProjectId,
		ProjectName:   src.ProjectName,
		HangMuc:       src.HangMuc,
		TinhNang:      src.TinhNang,
		SoLanPhaiTest: src.SoLanPhaiTest,
		Priority:      src.Priority,
		Platform:      src.Platform,
		Ctime:         time.UnixMilli(src.Ctime),
		Total:         src.Total,
		Issues:        src.Issues,
	}
}

// toTime 0 表示没有
func toTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

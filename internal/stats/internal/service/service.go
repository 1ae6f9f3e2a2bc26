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
package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/stats/internal/domain"
	"github.com/ecodeclub/testhub/internal/stats/internal/repository"
	"github.com/ecodeclub/testhub/internal/stats/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTestCaseNotFound = repository.ErrTestCaseNotFound
	ErrPermissionDenied = errors.New("没有访问该项目的权限")
)

const (
	dashboardTrendDays = 7
	dashboardTop       = 5
	detailedDays       = 30
	detailedWeeks      = 12
	detailedMonths     = 12
	detailedTopUsers   = 10
	caseTrendDays      = 30
	caseHistoryLimit   = 20
	projectTrendDays   = 7
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/stats.mock.go Service
type Service interface {
	// Dashboard pid 为 0 的时候统计调用方能看到的所有项目
	Dashboard(ctx context.Context, p auth.Principal, pid int64) (domain.Dashboard, error)
	Detailed(ctx context.Context, p auth.Principal, pid int64) (domain.Detailed, error)
	// Testers 只有管理员能调用，由路由保证
	Testers(ctx context.Context) (domain.Testers, error)
	TestCase(ctx context.Context, p auth.Principal, id int64) (domain.TestCaseStats, error)
	Project(ctx context.Context, p auth.Principal, pid int64) (domain.ProjectStats, error)
	// ExportProjectReport 项目不存在的时候返回空
	ExportProjectReport(ctx context.Context, p auth.Principal, pid int64) (domain.ProjectReport, error)
}

var _ Service = &service{}

type service struct {
	repo       repository.StatsRepository
	projectSvc project.Service
	loc        *time.Location
	now        func() time.Time
}

func NewService(repo repository.StatsRepository, projectSvc project.Service, loc *time.Location) Service {
	return &service{
		repo:       repo,
		projectSvc: projectSvc,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *service) Dashboard(ctx context.Context, p auth.Principal, pid int64) (domain.Dashboard, error) {
	scope, err := s.scope(ctx, p, pid)
	if err != nil {
		return domain.Dashboard{}, err
	}
	var (
		eg    errgroup.Group
		res   domain.Dashboard
		cases []domain.CaseInfo
	)
	res.ExecutionTrend = domain.NewBuckets(domain.UnitDay, dashboardTrendDays, s.now(), s.loc)
	eg.Go(func() error {
		var err error
		res.TotalTestCases, err = s.repo.CountTestCases(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalExecutions, res.TotalIssues, err = s.repo.CountExecutions(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalUsers, err = s.repo.CountAccessUsers(ctx, scope)
		return err
	})
	eg.Go(func() error {
		start, end := domain.Window(res.ExecutionTrend)
		points, err := s.repo.Points(ctx, scope, start, end)
		if err != nil {
			return err
		}
		domain.Fill(res.ExecutionTrend, points)
		return nil
	})
	eg.Go(func() error {
		var err error
		cases, err = s.repo.Cases(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.UserPerformance, err = s.repo.UserPerformance(ctx, scope, dashboardTop)
		return err
	})
	eg.Go(func() error {
		var err error
		res.RecentActivity, err = s.repo.Activities(ctx, scope, dashboardTop)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Dashboard{}, err
	}
	res.StatusDistribution = domain.StatusDistribution(cases)
	return res, nil
}

func (s *service) Detailed(ctx context.Context, p auth.Principal, pid int64) (domain.Detailed, error) {
	scope, err := s.scope(ctx, p, pid)
	if err != nil {
		return domain.Detailed{}, err
	}
	now := s.now()
	res := domain.Detailed{
		Daily:   domain.NewBuckets(domain.UnitDay, detailedDays, now, s.loc),
		Weekly:  domain.NewBuckets(domain.UnitWeek, detailedWeeks, now, s.loc),
		Monthly: domain.NewBuckets(domain.UnitMonth, detailedMonths, now, s.loc),
	}
	var (
		eg    errgroup.Group
		cases []domain.CaseInfo
	)
	eg.Go(func() error {
		// 三个序列用同一次查询，区间取并集
		start, end := span(res.Daily, res.Weekly, res.Monthly)
		points, err := s.repo.Points(ctx, scope, start, end)
		if err != nil {
			return err
		}
		domain.Fill(res.Daily, points)
		domain.Fill(res.Weekly, points)
		domain.Fill(res.Monthly, points)
		return nil
	})
	eg.Go(func() error {
		var err error
		cases, err = s.repo.Cases(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Users, err = s.repo.UserPerformance(ctx, scope, detailedTopUsers)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Detailed{}, err
	}
	res.Categories = domain.CategoryStats(cases)
	res.Priorities = domain.PriorityStats(cases)
	return res, nil
}

func (s *service) Testers(ctx context.Context) (domain.Testers, error) {
	now := s.now()
	var (
		eg  errgroup.Group
		res domain.Testers
	)
	eg.Go(func() error {
		var err error
		res.Testers, err = s.repo.Testers(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Projects, err = s.repo.ProjectTesters(ctx, now.Add(-casestatus.InactiveAfter))
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Testers{}, err
	}
	for i := range res.Testers {
		res.Testers[i].Status = casestatus.TesterActivity(res.Testers[i].LastExecution, now)
	}
	return res, nil
}

func (s *service) TestCase(ctx context.Context, p auth.Principal, id int64) (domain.TestCaseStats, error) {
	info, err := s.repo.CaseInfo(ctx, id)
	if err != nil {
		return domain.TestCaseStats{}, err
	}
	if err = s.checkAccess(ctx, p, info.ProjectId); err != nil {
		return domain.TestCaseStats{}, err
	}
	scope := domain.CaseScope(id)
	res := domain.TestCaseStats{
		TestCase:       info,
		Total:          info.Total,
		Passed:         info.Passed(),
		Failed:         info.Issues,
		CompletionRate: casestatus.CompletionRate(info.Total, info.SoLanPhaiTest),
		PassRate:       casestatus.PassRate(info.Passed(), info.Total),
		Remaining:      casestatus.Remaining(info.Total, info.SoLanPhaiTest),
		Trend:          domain.NewBuckets(domain.UnitDay, caseTrendDays, s.now(), s.loc),
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.History, err = s.repo.Activities(ctx, scope, caseHistoryLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Testers, err = s.repo.UserPerformance(ctx, scope, 0)
		return err
	})
	eg.Go(func() error {
		start, end := domain.Window(res.Trend)
		points, err := s.repo.Points(ctx, scope, start, end)
		if err != nil {
			return err
		}
		domain.Fill(res.Trend, points)
		return nil
	})
	eg.Go(func() error {
		var err error
		res.Assigned, err = s.repo.AssignedTesters(ctx, id)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.TestCaseStats{}, err
	}
	// 只统计真正执行过的人
	res.UniqueTesters = len(res.Testers)
	res.Testers = domain.WithAssigned(res.Testers, res.Assigned)
	// History 按照执行时间倒序，第一条就是最近一次
	latest := ""
	if len(res.History) > 0 {
		latest = res.History[0].Loi
	}
	res.CurrentStatus = casestatus.FineStatus(info.Total, latest)
	return res, nil
}

func (s *service) Project(ctx context.Context, p auth.Principal, pid int64) (domain.ProjectStats, error) {
	if err := s.checkAccess(ctx, p, pid); err != nil {
		return domain.ProjectStats{}, err
	}
	scope := domain.ProjectScope(pid)
	now := s.now()
	res := domain.ProjectStats{
		ProjectId: pid,
		Trend:     domain.NewBuckets(domain.UnitDay, projectTrendDays, now, s.loc),
	}
	var (
		eg     errgroup.Group
		cases  []domain.CaseInfo
		latest map[int64]string
	)
	eg.Go(func() error {
		var err error
		cases, err = s.repo.Cases(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		latest, err = s.repo.LatestLoi(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalTesters, err = s.repo.CountAccessUsers(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ActiveTesters, err = s.repo.CountActiveTesters(ctx, scope, now.Add(-casestatus.InactiveAfter))
		return err
	})
	eg.Go(func() error {
		var err error
		res.Platforms, err = s.repo.Groups(ctx, scope, dao.GroupByPlatform)
		return err
	})
	eg.Go(func() error {
		groups, err := s.repo.Groups(ctx, scope, dao.GroupByPriority)
		res.Priorities = domain.SortGroupsByPriority(groups)
		return err
	})
	eg.Go(func() error {
		start, end := domain.Window(res.Trend)
		points, err := s.repo.Points(ctx, scope, start, end)
		if err != nil {
			return err
		}
		domain.Fill(res.Trend, points)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return domain.ProjectStats{}, err
	}
	res.TotalTestCases = int64(len(cases))
	for _, c := range cases {
		switch casestatus.FineStatus(c.Total, latest[c.Id]) {
		case casestatus.Passed:
			res.Passed++
		case casestatus.Failed:
			res.Failed++
		default:
			res.Pending++
		}
	}
	return res, nil
}

func (s *service) ExportProjectReport(ctx context.Context, p auth.Principal, pid int64) (domain.ProjectReport, error) {
	if err := s.checkAccess(ctx, p, pid); err != nil {
		return domain.ProjectReport{}, err
	}
	now := s.now()
	cases, err := s.repo.Cases(ctx, domain.ProjectScope(pid))
	if err != nil {
		return domain.ProjectReport{}, err
	}
	return domain.ProjectReport{
		ProjectId:   pid,
		GeneratedAt: now,
		Cases:       cases,
	}, nil
}

// scope 指定了项目就检查权限，没有指定就是调用方能看到的全部项目
func (s *service) scope(ctx context.Context, p auth.Principal, pid int64) (domain.Scope, error) {
	if pid > 0 {
		if err := s.checkAccess(ctx, p, pid); err != nil {
			return domain.Scope{}, err
		}
		return domain.ProjectScope(pid), nil
	}
	ids, err := s.projectSvc.AccessibleIds(ctx, p)
	if err != nil {
		return domain.Scope{}, err
	}
	return domain.Scope{ProjectIds: ids}, nil
}

func (s *service) checkAccess(ctx context.Context, p auth.Principal, pid int64) error {
	if p.IsAdmin() {
		return nil
	}
	ok, err := s.projectSvc.CanAccess(ctx, p, pid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}

func span(series ...[]domain.Bucket) (time.Time, time.Time) {
	var start, end time.Time
	for _, bs := range series {
		s, e := domain.Window(bs)
		if start.IsZero() || s.Before(start) {
			start = s
		}
		if e.After(end) {
			end = e
		}
	}
	return start, end
}

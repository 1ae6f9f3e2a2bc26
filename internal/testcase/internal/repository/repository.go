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
	"github.com/ecodeclub/testhub/internal/testcase/internal/domain"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

type TestCaseRepository interface {
	Save(ctx context.Context, tc domain.TestCase) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (domain.TestCase, error)
	// List 返回用例、执行次数以及最近一次执行
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Summary, int64, error)

	InsertExecution(ctx context.Context, e domain.Execution) (int64, error)
	Executions(ctx context.Context, caseId int64, offset, limit int) ([]domain.Execution, int64, error)

	Assign(ctx context.Context, caseId int64, uids []int64) error
	Unassign(ctx context.Context, caseId, uid int64) error
	IsAssigned(ctx context.Context, caseId, uid int64) (bool, error)
	Assignees(ctx context.Context, caseId int64) ([]int64, error)
}

var _ TestCaseRepository = &testCaseRepository{}

type testCaseRepository struct {
	dao dao.TestCaseDAO
}

func NewTestCaseRepository(d dao.TestCaseDAO) TestCaseRepository {
	return &testCaseRepository{dao: d}
}

func (repo *testCaseRepository) Save(ctx context.Context, tc domain.TestCase) (int64, error) {
	return repo.dao.Save(ctx, repo.toEntity(tc))
}

func (repo *testCaseRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *testCaseRepository) GetById(ctx context.Context, id int64) (domain.TestCase, error) {
	tc, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(tc), err
}

func (repo *testCaseRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Summary, int64, error) {
	df := dao.Filter{
		ProjectId: f.ProjectId,
		Platform:  f.Platform,
		Priority:  f.Priority,
		HangMuc:   f.HangMuc,
	}
	var (
		eg    errgroup.Group
		tcs   []dao.TestCase
		total int64
	)
	eg.Go(func() error {
		var err error
		tcs, err = repo.dao.List(ctx, df, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = repo.dao.Count(ctx, df)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	ids := slice.Map(tcs, func(idx int, src dao.TestCase) int64 {
		return src.Id
	})
	var (
		execEg errgroup.Group
		counts []dao.ExecutionCount
		latest []dao.Execution
	)
	execEg.Go(func() error {
		var err error
		counts, err = repo.dao.ExecutionCounts(ctx, ids)
		return err
	})
	execEg.Go(func() error {
		var err error
		latest, err = repo.dao.LatestExecutions(ctx, ids)
		return err
	})
	if err := execEg.Wait(); err != nil {
		return nil, 0, err
	}

	countMap := make(map[int64]int64, len(counts))
	for _, c := range counts {
		countMap[c.TestCaseId] = c.Cnt
	}
	// 同一时间有多条的时候取 id 最大的
	latestMap := make(map[int64]dao.Execution, len(latest))
	for _, e := range latest {
		if old, ok := latestMap[e.TestCaseId]; !ok || e.Id > old.Id {
			latestMap[e.TestCaseId] = e
		}
	}
	res := make([]domain.Summary, 0, len(tcs))
	for _, tc := range tcs {
		res = append(res, domain.NewSummary(repo.toDomain(tc), countMap[tc.Id], latestMap[tc.Id].Loi))
	}
	return res, total, nil
}

func (repo *testCaseRepository) InsertExecution(ctx context.Context, e domain.Execution) (int64, error) {
	return repo.dao.InsertExecution(ctx, dao.Execution{
		TestCaseId:    e.TestCaseId,
		TesterId:      e.TesterId,
		Loi:           e.Loi,
		CamNhan:       e.CamNhan,
		ExecutionDate: e.ExecutionDate.UnixMilli(),
	})
}

func (repo *testCaseRepository) Executions(ctx context.Context, caseId int64, offset, limit int) ([]domain.Execution, int64, error) {
	var (
		eg    errgroup.Group
		es    []dao.Execution
		total int64
	)
	eg.Go(func() error {
		var err error
		es, err = repo.dao.Executions(ctx, caseId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = repo.dao.CountExecutions(ctx, caseId)
		return err
	})
	err := eg.Wait()
	return slice.Map(es, func(idx int, src dao.Execution) domain.Execution {
		return domain.Execution{
			Id:            src.Id,
			TestCaseId:    src.TestCaseId,
			TesterId:      src.TesterId,
			Loi:           src.Loi,
			CamNhan:       src.CamNhan,
			ExecutionDate: time.UnixMilli(src.ExecutionDate),
			Ctime:         time.UnixMilli(src.Ctime),
		}
	}), total, err
}

func (repo *testCaseRepository) Assign(ctx context.Context, caseId int64, uids []int64) error {
	return repo.dao.Assign(ctx, caseId, uids)
}

func (repo *testCaseRepository) Unassign(ctx context.Context, caseId, uid int64) error {
	return repo.dao.Unassign(ctx, caseId, uid)
}

func (repo *testCaseRepository) IsAssigned(ctx context.Context, caseId, uid int64) (bool, error) {
	return repo.dao.IsAssigned(ctx, caseId, uid)
}

func (repo *testCaseRepository) Assignees(ctx context.Context, caseId int64) ([]int64, error) {
	return repo.dao.Assignees(ctx, caseId)
}

func (repo *testCaseRepository) toDomain(tc dao.TestCase) domain.TestCase {
	return domain.TestCase{
		Id:            tc.Id,
		ProjectId:     tc.ProjectId,
		HangMuc:       tc.HangMuc,
		TinhNang:      tc.TinhNang,
		SoLanPhaiTest: tc.SoLanPhaiTest,
		Priority:      domain.Priority(tc.Priority),
		Platform:      domain.Platform(tc.Platform),
		Ctime:         time.UnixMilli(tc.Ctime),
	}
}

func (repo *testCaseRepository) toEntity(tc domain.TestCase) dao.TestCase {
	return dao.TestCase{
		Id:            tc.Id,
		ProjectId:     tc.ProjectId,
		HangMuc:       tc.HangMuc,
		TinhNang:      tc.TinhNang,
		SoLanPhaiTest: tc.SoLanPhaiTest,
		Priority:      tc.Priority.String(),
		Platform:      tc.Platform.String(),
	}
}

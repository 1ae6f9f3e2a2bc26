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
	"github.com/ecodeclub/testhub/internal/project"
	"github.com/ecodeclub/testhub/internal/testcase/internal/domain"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository"
	"github.com/ecodeclub/testhub/internal/testcase/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrTestCaseNotFound = dao.ErrRecordNotFound
	ErrProjectNotFound  = errors.New("项目不存在")
	ErrPermissionDenied = errors.New("没有访问权限")
	ErrNotAssigned      = errors.New("没有被分配该测试用例")
)

type Service interface {
	Save(ctx context.Context, tc domain.TestCase) (int64, error)
	Delete(ctx context.Context, id int64) error
	Detail(ctx context.Context, p auth.Principal, id int64) (domain.TestCase, error)
	List(ctx context.Context, p auth.Principal, f domain.Filter, offset, limit int) ([]domain.Summary, int64, error)

	Assign(ctx context.Context, caseId int64, uids []int64) error
	Unassign(ctx context.Context, caseId, uid int64) error

	// Record 记录一次执行，测试人员必须被分配了该用例
	Record(ctx context.Context, p auth.Principal, e domain.Execution) (int64, error)
	Executions(ctx context.Context, p auth.Principal, caseId int64, offset, limit int) ([]domain.Execution, int64, error)
}

var _ Service = &service{}

type service struct {
	repo       repository.TestCaseRepository
	projectSvc project.Service
	logger     *elog.Component
	now        func() time.Time
}

func NewService(repo repository.TestCaseRepository, projectSvc project.Service) Service {
	return &service{
		repo:       repo,
		projectSvc: projectSvc,
		logger:     elog.DefaultLogger,
		now:        time.Now,
	}
}

func (s *service) Save(ctx context.Context, tc domain.TestCase) (int64, error) {
	if tc.Id == 0 {
		// 只有管理员能创建用例，所以这里用管理员身份检查项目是否存在
		_, err := s.projectSvc.Detail(ctx, auth.Principal{Role: auth.RoleAdmin}, tc.ProjectId)
		if errors.Is(err, project.ErrProjectNotFound) {
			return 0, ErrProjectNotFound
		}
		if err != nil {
			return 0, err
		}
	}
	return s.repo.Save(ctx, tc)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Detail(ctx context.Context, p auth.Principal, id int64) (domain.TestCase, error) {
	tc, err := s.repo.GetById(ctx, id)
	if err != nil {
		return domain.TestCase{}, err
	}
	if err = s.checkProjectAccess(ctx, p, tc.ProjectId); err != nil {
		return domain.TestCase{}, err
	}
	return tc, nil
}

func (s *service) List(ctx context.Context, p auth.Principal, f domain.Filter, offset, limit int) ([]domain.Summary, int64, error) {
	if err := s.checkProjectAccess(ctx, p, f.ProjectId); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, f, offset, limit)
}

func (s *service) Assign(ctx context.Context, caseId int64, uids []int64) error {
	if _, err := s.repo.GetById(ctx, caseId); err != nil {
		return err
	}
	return s.repo.Assign(ctx, caseId, uids)
}

func (s *service) Unassign(ctx context.Context, caseId, uid int64) error {
	return s.repo.Unassign(ctx, caseId, uid)
}

func (s *service) Record(ctx context.Context, p auth.Principal, e domain.Execution) (int64, error) {
	if _, err := s.repo.GetById(ctx, e.TestCaseId); err != nil {
		return 0, err
	}
	if !p.IsAdmin() {
		ok, err := s.repo.IsAssigned(ctx, e.TestCaseId, p.ID)
		if err != nil {
			return 0, err
		}
		if !ok {
			s.logger.Warn("测试人员执行未分配的用例",
				elog.Int64("uid", p.ID),
				elog.Int64("tcid", e.TestCaseId))
			return 0, ErrNotAssigned
		}
	}
	e.TesterId = p.ID
	if e.ExecutionDate.IsZero() {
		e.ExecutionDate = s.now()
	}
	return s.repo.InsertExecution(ctx, e)
}

func (s *service) Executions(ctx context.Context, p auth.Principal, caseId int64, offset, limit int) ([]domain.Execution, int64, error) {
	if _, err := s.Detail(ctx, p, caseId); err != nil {
		return nil, 0, err
	}
	return s.repo.Executions(ctx, caseId, offset, limit)
}

func (s *service) checkProjectAccess(ctx context.Context, p auth.Principal, pid int64) error {
	ok, err := s.projectSvc.CanAccess(ctx, p, pid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}

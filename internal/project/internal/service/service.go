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

	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/project/internal/domain"
	"github.com/ecodeclub/testhub/internal/project/internal/repository"
	"github.com/ecodeclub/testhub/internal/project/internal/repository/dao"
)

var (
	ErrProjectNotFound  = dao.ErrRecordNotFound
	ErrPermissionDenied = errors.New("没有访问该项目的权限")
	ErrProjectInUse     = dao.ErrProjectInUse
)

//go:generate mockgen -source=./service.go -package=projectmocks -destination=../../mocks/project.mock.go Service
type Service interface {
	Save(ctx context.Context, prj domain.Project) (int64, error)
	Delete(ctx context.Context, id int64) error
	// Detail 测试人员没有权限的时候返回 ErrPermissionDenied
	Detail(ctx context.Context, p auth.Principal, id int64) (domain.Project, error)
	List(ctx context.Context, p auth.Principal, offset, limit int) ([]domain.Project, int64, error)

	GrantAccess(ctx context.Context, pid int64, uids []int64) error
	RevokeAccess(ctx context.Context, pid, uid int64) error
	Members(ctx context.Context, pid int64) ([]domain.Member, error)

	// CanAccess 管理员可以访问所有项目
	CanAccess(ctx context.Context, p auth.Principal, pid int64) (bool, error)
	// AccessibleIds 管理员返回 nil，表示不限制
	AccessibleIds(ctx context.Context, p auth.Principal) ([]int64, error)
}

var _ Service = &service{}

type service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, prj domain.Project) (int64, error) {
	if prj.Id == 0 && prj.Status == "" {
		prj.Status = domain.StatusActive
	}
	return s.repo.Save(ctx, prj)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Detail(ctx context.Context, p auth.Principal, id int64) (domain.Project, error) {
	prj, err := s.repo.Detail(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	ok, err := s.CanAccess(ctx, p, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !ok {
		return domain.Project{}, ErrPermissionDenied
	}
	return prj, nil
}

func (s *service) List(ctx context.Context, p auth.Principal, offset, limit int) ([]domain.Project, int64, error) {
	ids, err := s.AccessibleIds(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, ids, offset, limit)
}

func (s *service) GrantAccess(ctx context.Context, pid int64, uids []int64) error {
	if _, err := s.repo.Detail(ctx, pid); err != nil {
		return err
	}
	return s.repo.GrantAccess(ctx, pid, uids)
}

func (s *service) RevokeAccess(ctx context.Context, pid, uid int64) error {
	return s.repo.RevokeAccess(ctx, pid, uid)
}

func (s *service) Members(ctx context.Context, pid int64) ([]domain.Member, error) {
	return s.repo.Members(ctx, pid)
}

func (s *service) CanAccess(ctx context.Context, p auth.Principal, pid int64) (bool, error) {
	if p.IsAdmin() {
		return true, nil
	}
	return s.repo.HasAccess(ctx, pid, p.ID)
}

func (s *service) AccessibleIds(ctx context.Context, p auth.Principal) ([]int64, error) {
	if p.IsAdmin() {
		return nil, nil
	}
	ids, err := s.repo.AccessibleIds(ctx, p.ID)
	if ids == nil {
		ids = []int64{}
	}
	return ids, err
}

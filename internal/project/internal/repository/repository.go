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
	"github.com/ecodeclub/testhub/internal/project/internal/domain"
	"github.com/ecodeclub/testhub/internal/project/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

type Repository interface {
	Save(ctx context.Context, prj domain.Project) (int64, error)
	Delete(ctx context.Context, id int64) error
	Detail(ctx context.Context, id int64) (domain.Project, error)
	// List ids 为 nil 的时候返回全部项目
	List(ctx context.Context, ids []int64, offset, limit int) ([]domain.Project, int64, error)

	GrantAccess(ctx context.Context, pid int64, uids []int64) error
	RevokeAccess(ctx context.Context, pid, uid int64) error
	Members(ctx context.Context, pid int64) ([]domain.Member, error)
	HasAccess(ctx context.Context, pid, uid int64) (bool, error)
	AccessibleIds(ctx context.Context, uid int64) ([]int64, error)
}

var _ Repository = &projectRepository{}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) Repository {
	return &projectRepository{dao: d}
}

func (repo *projectRepository) Save(ctx context.Context, prj domain.Project) (int64, error) {
	return repo.dao.Save(ctx, dao.Project{
		Id:          prj.Id,
		Name:        prj.Name,
		Description: prj.Description,
		Status:      prj.Status.String(),
	})
}

func (repo *projectRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *projectRepository) Detail(ctx context.Context, id int64) (domain.Project, error) {
	prj, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(prj), err
}

func (repo *projectRepository) List(ctx context.Context, ids []int64, offset, limit int) ([]domain.Project, int64, error) {
	var (
		eg    errgroup.Group
		prjs  []dao.Project
		total int64
	)
	eg.Go(func() error {
		var err error
		prjs, err = repo.dao.List(ctx, ids, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = repo.dao.Count(ctx, ids)
		return err
	})
	err := eg.Wait()
	return slice.Map(prjs, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), total, err
}

func (repo *projectRepository) GrantAccess(ctx context.Context, pid int64, uids []int64) error {
	return repo.dao.GrantAccess(ctx, pid, uids)
}

func (repo *projectRepository) RevokeAccess(ctx context.Context, pid, uid int64) error {
	return repo.dao.RevokeAccess(ctx, pid, uid)
}

func (repo *projectRepository) Members(ctx context.Context, pid int64) ([]domain.Member, error) {
	res, err := repo.dao.Members(ctx, pid)
	return slice.Map(res, func(idx int, src dao.ProjectAccess) domain.Member {
		return domain.Member{
			Uid:   src.UserId,
			Ctime: time.UnixMilli(src.Ctime),
		}
	}), err
}

func (repo *projectRepository) HasAccess(ctx context.Context, pid, uid int64) (bool, error) {
	return repo.dao.HasAccess(ctx, pid, uid)
}

func (repo *projectRepository) AccessibleIds(ctx context.Context, uid int64) ([]int64, error) {
	return repo.dao.AccessibleIds(ctx, uid)
}

func (repo *projectRepository) toDomain(prj dao.Project) domain.Project {
	return domain.Project{
		Id:          prj.Id,
		Name:        prj.Name,
		Description: prj.Description,
		Status:      domain.Status(prj.Status),
		Ctime:       time.UnixMilli(prj.Ctime),
	}
}

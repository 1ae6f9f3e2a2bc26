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
	"github.com/ecodeclub/testhub/internal/user/internal/domain"
	"github.com/ecodeclub/testhub/internal/user/internal/repository"
	"github.com/ecodeclub/testhub/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUserOrPassword = errors.New("邮箱或者密码不对")
	ErrUserInactive          = errors.New("账号已停用")
	ErrDuplicateEmail        = dao.ErrUserDuplicate
	ErrUserNotFound          = dao.ErrDataNotFound
)

type UserService interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// Create 创建账号，密码会被哈希
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 不传密码就不修改密码
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, role auth.Role, offset, limit int) ([]domain.User, int64, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// EnsureAdmin 邮箱不存在的时候创建管理员，已经存在就什么都不做
	EnsureAdmin(ctx context.Context, u domain.User) error
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		svc.logger.Debug("登录失败", elog.String("email", email), elog.FieldErr(err))
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if u.Status == domain.StatusInactive {
		return domain.User{}, ErrUserInactive
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) Create(ctx context.Context, u domain.User) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.Password = string(hash)
	if u.Status == "" {
		u.Status = domain.StatusActive
	}
	return svc.repo.Create(ctx, u)
}

func (svc *userService) Update(ctx context.Context, u domain.User) error {
	if u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
	}
	return svc.repo.Update(ctx, u)
}

func (svc *userService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *userService) List(ctx context.Context, role auth.Role, offset, limit int) ([]domain.User, int64, error) {
	return svc.repo.List(ctx, role, offset, limit)
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) EnsureAdmin(ctx context.Context, u domain.User) error {
	_, err := svc.repo.FindByEmail(ctx, u.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	u.Role = auth.RoleAdmin
	u.Status = domain.StatusActive
	id, err := svc.Create(ctx, u)
	if errors.Is(err, ErrDuplicateEmail) {
		// 多个实例同时启动
		return nil
	}
	if err == nil {
		svc.logger.Info("初始化管理员", elog.Int64("uid", id), elog.String("email", u.Email))
	}
	return err
}

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/user/internal/domain"
	"github.com/ecodeclub/testhub/internal/user/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id int64) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// List 返回当页数据以及总数
	List(ctx context.Context, role auth.Role, offset, limit int) ([]domain.User, int64, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{
		dao: d,
	}
}

func (ur *userRepository) Update(ctx context.Context, u domain.User) error {
	return ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
}

func (ur *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *userRepository) Delete(ctx context.Context, id int64) error {
	return ur.dao.Delete(ctx, id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.dao.FindById(ctx, id)
	return ur.entityToDomain(u), err
}

func (ur *userRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), err
}

func (ur *userRepository) List(ctx context.Context, role auth.Role, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []dao.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = ur.dao.List(ctx, role.String(), offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = ur.dao.Count(ctx, role.String())
		return err
	})
	err := eg.Wait()
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), total, err
}

func (ur *userRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Name:     ue.Name,
		Email:    ue.Email,
		Password: ue.Password,
		Role:     auth.Role(ue.Role),
		Status:   domain.Status(ue.Status),
		Ctime:    time.UnixMilli(ue.Ctime),
	}
}

func (ur *userRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role.String(),
		Status:   u.Status.String(),
	}
}

package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱唯一索引冲突
var ErrUserDuplicate = errors.New("邮箱已经被使用")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	List(ctx context.Context, role string, offset, limit int) ([]User, error)
	Count(ctx context.Context, role string) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	res := ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", u.Id).Updates(&u)
	if isDuplicateErr(res.Error) {
		return ErrUserDuplicate
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if isDuplicateErr(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) Delete(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Where("id = ?", id).Delete(&User{}).Error
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) List(ctx context.Context, role string, offset, limit int) ([]User, error) {
	var res []User
	err := ud.withRole(ctx, role).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (ud *GORMUserDAO) Count(ctx context.Context, role string) (int64, error) {
	var cnt int64
	err := ud.withRole(ctx, role).Model(&User{}).Count(&cnt).Error
	return cnt, err
}

func (ud *GORMUserDAO) withRole(ctx context.Context, role string) *gorm.DB {
	db := ud.db.WithContext(ctx)
	if role != "" {
		db = db.Where("role = ?", role)
	}
	return db
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite 的驱动只给出了错误信息
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256);not null"`
	Email    string `gorm:"type:varchar(256);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(256);not null"`
	Role     string `gorm:"type:varchar(32);index;not null;comment:admin 或者 tester"`
	Status   string `gorm:"type:varchar(32);not null;default:active"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

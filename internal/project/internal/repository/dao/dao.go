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
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrProjectInUse   = errors.New("项目下还有测试用例")
)

// 测试用例归 testcase 模块管理，这里只用来判断项目能不能删除
const testCaseTable = "test_cases"

type ProjectDAO interface {
	// Save 新建或者更新
	Save(ctx context.Context, prj Project) (int64, error)
	// Delete 同时删除访问权限
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Project, error)
	// List ids 为 nil 的时候不限制
	List(ctx context.Context, ids []int64, offset, limit int) ([]Project, error)
	Count(ctx context.Context, ids []int64) (int64, error)

	GrantAccess(ctx context.Context, pid int64, uids []int64) error
	RevokeAccess(ctx context.Context, pid, uid int64) error
	Members(ctx context.Context, pid int64) ([]ProjectAccess, error)
	HasAccess(ctx context.Context, pid, uid int64) (bool, error)
	AccessibleIds(ctx context.Context, uid int64) ([]int64, error)
}

var _ ProjectDAO = &GORMProjectDAO{}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) Save(ctx context.Context, prj Project) (int64, error) {
	now := time.Now().UnixMilli()
	prj.Ctime = now
	prj.Utime = now
	db := dao.db.WithContext(ctx)
	if prj.Id > 0 {
		cols := map[string]any{
			"name":        prj.Name,
			"description": prj.Description,
			"utime":       now,
		}
		if prj.Status != "" {
			cols["status"] = prj.Status
		}
		res := db.Model(&Project{}).Where("id = ?", prj.Id).Updates(cols)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 0 {
			return 0, ErrRecordNotFound
		}
		return prj.Id, nil
	}
	err := db.Create(&prj).Error
	return prj.Id, err
}

func (dao *GORMProjectDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(testCaseTable) {
			var cnt int64
			err := tx.Table(testCaseTable).Where("project_id = ?", id).Count(&cnt).Error
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrProjectInUse
			}
		}
		err := tx.Where("project_id = ?", id).Delete(&ProjectAccess{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Project{}).Error
	})
}

func (dao *GORMProjectDAO) GetById(ctx context.Context, id int64) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) List(ctx context.Context, ids []int64, offset, limit int) ([]Project, error) {
	var res []Project
	if ids != nil && len(ids) == 0 {
		return res, nil
	}
	err := dao.withIds(ctx, ids).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Count(ctx context.Context, ids []int64) (int64, error) {
	var res int64
	if ids != nil && len(ids) == 0 {
		return 0, nil
	}
	err := dao.withIds(ctx, ids).Model(&Project{}).Count(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) withIds(ctx context.Context, ids []int64) *gorm.DB {
	db := dao.db.WithContext(ctx)
	if ids != nil {
		db = db.Where("id IN ?", ids)
	}
	return db
}

func (dao *GORMProjectDAO) GrantAccess(ctx context.Context, pid int64, uids []int64) error {
	if len(uids) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	rows := make([]ProjectAccess, 0, len(uids))
	for _, uid := range uids {
		rows = append(rows, ProjectAccess{ProjectId: pid, UserId: uid, Ctime: now})
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (dao *GORMProjectDAO) RevokeAccess(ctx context.Context, pid, uid int64) error {
	return dao.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", pid, uid).
		Delete(&ProjectAccess{}).Error
}

func (dao *GORMProjectDAO) Members(ctx context.Context, pid int64) ([]ProjectAccess, error) {
	var res []ProjectAccess
	err := dao.db.WithContext(ctx).Where("project_id = ?", pid).Order("user_id").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) HasAccess(ctx context.Context, pid, uid int64) (bool, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&ProjectAccess{}).
		Where("project_id = ? AND user_id = ?", pid, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func (dao *GORMProjectDAO) AccessibleIds(ctx context.Context, uid int64) ([]int64, error) {
	res := make([]int64, 0, 8)
	err := dao.db.WithContext(ctx).Model(&ProjectAccess{}).
		Where("user_id = ?", uid).
		Order("project_id").
		Pluck("project_id", &res).Error
	return res, err
}

type Project struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(32);not null;default:active"`
	Utime       int64
	Ctime       int64
}

// ProjectAccess 测试人员能访问哪些项目，管理员不需要
type ProjectAccess struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProjectId int64 `gorm:"uniqueIndex:idx_project_user;not null"`
	UserId    int64 `gorm:"uniqueIndex:idx_project_user;index;not null"`
	Ctime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Project{}, &ProjectAccess{})
}

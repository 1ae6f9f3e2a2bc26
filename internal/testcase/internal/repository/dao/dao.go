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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Filter struct {
	ProjectId int64
	Platform  string
	Priority  string
	HangMuc   string
}

type TestCaseDAO interface {
	Save(ctx context.Context, tc TestCase) (int64, error)
	// Delete 同时删除执行记录和分配关系
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (TestCase, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]TestCase, error)
	Count(ctx context.Context, f Filter) (int64, error)

	ExecutionCounts(ctx context.Context, ids []int64) ([]ExecutionCount, error)
	// LatestExecutions 每个用例 execution_date 最大的执行记录，同一时间的多条都会返回
	LatestExecutions(ctx context.Context, ids []int64) ([]Execution, error)
	InsertExecution(ctx context.Context, e Execution) (int64, error)
	Executions(ctx context.Context, caseId int64, offset, limit int) ([]Execution, error)
	CountExecutions(ctx context.Context, caseId int64) (int64, error)

	Assign(ctx context.Context, caseId int64, uids []int64) error
	Unassign(ctx context.Context, caseId, uid int64) error
	IsAssigned(ctx context.Context, caseId, uid int64) (bool, error)
	Assignees(ctx context.Context, caseId int64) ([]int64, error)
}

var _ TestCaseDAO = &GORMTestCaseDAO{}

type GORMTestCaseDAO struct {
	db *egorm.Component
}

func NewGORMTestCaseDAO(db *egorm.Component) TestCaseDAO {
	return &GORMTestCaseDAO{db: db}
}

func (dao *GORMTestCaseDAO) Save(ctx context.Context, tc TestCase) (int64, error) {
	now := time.Now().UnixMilli()
	tc.Ctime = now
	tc.Utime = now
	db := dao.db.WithContext(ctx)
	if tc.Id > 0 {
		res := db.Model(&TestCase{}).Where("id = ?", tc.Id).Updates(map[string]any{
			"hang_muc":         tc.HangMuc,
			"tinh_nang":        tc.TinhNang,
			"so_lan_phai_test": tc.SoLanPhaiTest,
			"priority":         tc.Priority,
			"platform":         tc.Platform,
			"utime":            now,
		})
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 0 {
			return 0, ErrRecordNotFound
		}
		return tc.Id, nil
	}
	err := db.Create(&tc).Error
	return tc.Id, err
}

func (dao *GORMTestCaseDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("test_case_id = ?", id).Delete(&Execution{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("test_case_id = ?", id).Delete(&TestAssignment{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TestCase{}).Error
	})
}

func (dao *GORMTestCaseDAO) GetById(ctx context.Context, id int64) (TestCase, error) {
	var res TestCase
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) List(ctx context.Context, f Filter, offset, limit int) ([]TestCase, error) {
	var res []TestCase
	err := dao.filter(ctx, f).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var res int64
	err := dao.filter(ctx, f).Model(&TestCase{}).Count(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) filter(ctx context.Context, f Filter) *gorm.DB {
	db := dao.db.WithContext(ctx).Where("project_id = ?", f.ProjectId)
	if f.Platform != "" {
		db = db.Where("platform = ?", f.Platform)
	}
	if f.Priority != "" {
		db = db.Where("priority = ?", f.Priority)
	}
	if f.HangMuc != "" {
		db = db.Where("hang_muc = ?", f.HangMuc)
	}
	return db
}

func (dao *GORMTestCaseDAO) ExecutionCounts(ctx context.Context, ids []int64) ([]ExecutionCount, error) {
	var res []ExecutionCount
	if len(ids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Model(&Execution{}).
		Select("test_case_id, COUNT(*) AS cnt").
		Where("test_case_id IN ?", ids).
		Group("test_case_id").
		Scan(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) LatestExecutions(ctx context.Context, ids []int64) ([]Execution, error) {
	var res []Execution
	if len(ids) == 0 {
		return res, nil
	}
	db := dao.db.WithContext(ctx)
	latest := db.Model(&Execution{}).
		Select("test_case_id, MAX(execution_date) AS max_date").
		Where("test_case_id IN ?", ids).
		Group("test_case_id")
	err := db.Table("executions AS e").
		Select("e.*").
		Joins("JOIN (?) AS m ON e.test_case_id = m.test_case_id AND e.execution_date = m.max_date", latest).
		Order("e.id ASC").
		Scan(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) InsertExecution(ctx context.Context, e Execution) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	err := dao.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (dao *GORMTestCaseDAO) Executions(ctx context.Context, caseId int64, offset, limit int) ([]Execution, error) {
	var res []Execution
	err := dao.db.WithContext(ctx).
		Where("test_case_id = ?", caseId).
		Order("execution_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) CountExecutions(ctx context.Context, caseId int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Execution{}).
		Where("test_case_id = ?", caseId).
		Count(&res).Error
	return res, err
}

func (dao *GORMTestCaseDAO) Assign(ctx context.Context, caseId int64, uids []int64) error {
	if len(uids) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	rows := make([]TestAssignment, 0, len(uids))
	for _, uid := range uids {
		rows = append(rows, TestAssignment{UserId: uid, TestCaseId: caseId, Ctime: now})
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (dao *GORMTestCaseDAO) Unassign(ctx context.Context, caseId, uid int64) error {
	return dao.db.WithContext(ctx).
		Where("test_case_id = ? AND user_id = ?", caseId, uid).
		Delete(&TestAssignment{}).Error
}

func (dao *GORMTestCaseDAO) IsAssigned(ctx context.Context, caseId, uid int64) (bool, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&TestAssignment{}).
		Where("test_case_id = ? AND user_id = ?", caseId, uid).
		Count(&cnt).Error
	return cnt > 0, err
}

func (dao *GORMTestCaseDAO) Assignees(ctx context.Context, caseId int64) ([]int64, error) {
	var res []int64
	err := dao.db.WithContext(ctx).Model(&TestAssignment{}).
		Where("test_case_id = ?", caseId).
		Order("user_id").
		Pluck("user_id", &res).Error
	return res, err
}

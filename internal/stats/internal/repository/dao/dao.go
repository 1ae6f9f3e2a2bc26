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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// issueExpr 错误描述非空的执行记为一个问题
const issueExpr = "CASE WHEN TRIM(COALESCE(e.loi, '')) <> '' THEN 1 ELSE 0 END"

// Filter ProjectIds 为 nil 表示不限制项目，TestCaseId 为 0 表示不限制用例
type Filter struct {
	ProjectIds []int64
	TestCaseId int64
}

// GroupColumn 允许分组的列
type GroupColumn string

const (
	GroupByPlatform GroupColumn = "platform"
	GroupByPriority GroupColumn = "priority"
)

type StatsDAO interface {
	CountTestCases(ctx context.Context, f Filter) (int64, error)
	CountExecutions(ctx context.Context, f Filter) (CountRow, error)
	// CountAccessUsers 有项目访问权限的用户数，去重
	CountAccessUsers(ctx context.Context, f Filter) (int64, error)
	// CountActiveTesters since 之后有执行记录的测试人员数
	CountActiveTesters(ctx context.Context, f Filter, since int64) (int64, error)
	// Points 执行时间在 [start, end) 之间的执行
	Points(ctx context.Context, f Filter, start, end int64) ([]PointRow, error)
	// Cases 每个用例以及它的执行次数和问题数
	Cases(ctx context.Context, f Filter) ([]CaseRow, error)
	// UserPerformance 按照执行次数倒序，limit 为 0 不限制。
	// accessProject 大于 0 的时候只统计有该项目权限的用户
	UserPerformance(ctx context.Context, f Filter, accessProject int64, limit int) ([]UserPerfRow, error)
	// Activities 按照执行时间倒序
	Activities(ctx context.Context, f Filter, limit int) ([]ActivityRow, error)
	Testers(ctx context.Context) ([]TesterRow, error)
	ProjectTesters(ctx context.Context, since int64) ([]ProjectTesterRow, error)
	// LatestExecutions 每个用例 execution_date 最大的执行，时间相同的会同时返回
	LatestExecutions(ctx context.Context, f Filter) ([]LatestRow, error)
	Groups(ctx context.Context, f Filter, col GroupColumn) ([]GroupRow, error)
	AssignedTesters(ctx context.Context, caseId int64) ([]MemberRow, error)
}

var _ StatsDAO = &GORMStatsDAO{}

type GORMStatsDAO struct {
	db *egorm.Component
}

func NewGORMStatsDAO(db *egorm.Component) StatsDAO {
	return &GORMStatsDAO{db: db}
}

// scope tc 是 test_cases 的别名
func (f Filter) scope(db *gorm.DB) *gorm.DB {
	if f.ProjectIds != nil {
		db = db.Where("tc.project_id IN ?", f.ProjectIds)
	}
	if f.TestCaseId > 0 {
		db = db.Where("tc.id = ?", f.TestCaseId)
	}
	return db
}

// executions 执行记录关联用例，e 和 tc 两个别名
func (dao *GORMStatsDAO) executions(ctx context.Context, f Filter) *gorm.DB {
	db := dao.db.WithContext(ctx).Table("executions AS e").
		Joins("JOIN test_cases AS tc ON tc.id = e.test_case_id")
	return f.scope(db)
}

func (dao *GORMStatsDAO) CountTestCases(ctx context.Context, f Filter) (int64, error) {
	var res int64
	err := f.scope(dao.db.WithContext(ctx).Table("test_cases AS tc")).Count(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) CountExecutions(ctx context.Context, f Filter) (CountRow, error) {
	var res CountRow
	err := dao.executions(ctx, f).
		Select("COUNT(e.id) AS total, COALESCE(SUM(" + issueExpr + "), 0) AS issues").
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) CountAccessUsers(ctx context.Context, f Filter) (int64, error) {
	var res int64
	db := dao.db.WithContext(ctx).Table("project_accesses")
	if f.ProjectIds != nil {
		db = db.Where("project_id IN ?", f.ProjectIds)
	}
	err := db.Distinct("user_id").Count(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) CountActiveTesters(ctx context.Context, f Filter, since int64) (int64, error) {
	var res int64
	err := dao.executions(ctx, f).
		Where("e.execution_date >= ?", since).
		Distinct("e.tester_id").
		Count(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) Points(ctx context.Context, f Filter, start, end int64) ([]PointRow, error) {
	var res []PointRow
	err := dao.executions(ctx, f).
		Select("e.execution_date, " + issueExpr + " AS issue").
		Where("e.execution_date >= ? AND e.execution_date < ?", start, end).
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) Cases(ctx context.Context, f Filter) ([]CaseRow, error) {
	var res []CaseRow
	db := dao.db.WithContext(ctx).Table("test_cases AS tc").
		Select("tc.id, tc.project_id, COALESCE(p.name, '') AS project_name, tc.hang_muc, tc.tinh_nang, " +
			"tc.so_lan_phai_test, tc.priority, tc.platform, tc.ctime, " +
			"COUNT(e.id) AS total, COALESCE(SUM(" + issueExpr + "), 0) AS issues").
		Joins("LEFT JOIN projects AS p ON p.id = tc.project_id").
		Joins("LEFT JOIN executions AS e ON e.test_case_id = tc.id")
	err := f.scope(db).
		Group("tc.id, tc.project_id, p.name, tc.hang_muc, tc.tinh_nang, " +
			"tc.so_lan_phai_test, tc.priority, tc.platform, tc.ctime").
		Order("tc.id ASC").
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) UserPerformance(ctx context.Context, f Filter, accessProject int64, limit int) ([]UserPerfRow, error) {
	var res []UserPerfRow
	db := dao.executions(ctx, f).
		Select("e.tester_id AS uid, COALESCE(u.name, '') AS name, COUNT(e.id) AS executions, " +
			"COALESCE(SUM(" + issueExpr + "), 0) AS issues, MAX(e.execution_date) AS last_execution_date").
		Joins("LEFT JOIN users AS u ON u.id = e.tester_id")
	if accessProject > 0 {
		db = db.Joins("JOIN project_accesses AS pa ON pa.user_id = e.tester_id AND pa.project_id = ?", accessProject)
	}
	db = db.Group("e.tester_id, u.name").Order("executions DESC, uid ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) Activities(ctx context.Context, f Filter, limit int) ([]ActivityRow, error) {
	var res []ActivityRow
	err := dao.executions(ctx, f).
		Select("e.id, e.test_case_id, tc.hang_muc, tc.tinh_nang, e.tester_id, " +
			"COALESCE(u.name, '') AS tester_name, COALESCE(e.loi, '') AS loi, " +
			"COALESCE(e.cam_nhan, '') AS cam_nhan, e.execution_date").
		Joins("LEFT JOIN users AS u ON u.id = e.tester_id").
		Order("e.execution_date DESC, e.id DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) Testers(ctx context.Context) ([]TesterRow, error) {
	var res []TesterRow
	err := dao.db.WithContext(ctx).Table("users AS u").
		Select("u.id AS uid, u.name, u.email, COUNT(e.id) AS total_executions, " +
			"COALESCE(SUM(" + issueExpr + "), 0) AS total_issues, " +
			"COUNT(DISTINCT e.test_case_id) AS unique_test_cases, " +
			"COALESCE(MAX(e.execution_date), 0) AS last_execution_date").
		Joins("LEFT JOIN executions AS e ON e.tester_id = u.id").
		Where("u.role = ?", "tester").
		Group("u.id, u.name, u.email").
		Order("total_executions DESC, uid ASC").
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) ProjectTesters(ctx context.Context, since int64) ([]ProjectTesterRow, error) {
	var res []ProjectTesterRow
	err := dao.db.WithContext(ctx).Raw(`SELECT p.id AS project_id, p.name AS project_name,
	(SELECT COUNT(DISTINCT pa.user_id) FROM project_accesses AS pa WHERE pa.project_id = p.id) AS total_testers,
	(SELECT COUNT(DISTINCT e.tester_id) FROM executions AS e JOIN test_cases AS tc ON tc.id = e.test_case_id
		WHERE tc.project_id = p.id AND e.execution_date >= ?) AS active_testers,
	(SELECT COUNT(e.id) FROM executions AS e JOIN test_cases AS tc ON tc.id = e.test_case_id
		WHERE tc.project_id = p.id) AS total_executions,
	(SELECT COALESCE(SUM(`+issueExpr+`), 0) FROM executions AS e JOIN test_cases AS tc ON tc.id = e.test_case_id
		WHERE tc.project_id = p.id) AS total_issues
FROM projects AS p ORDER BY p.id ASC`, since).Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) LatestExecutions(ctx context.Context, f Filter) ([]LatestRow, error) {
	var res []LatestRow
	latest := dao.executions(ctx, f).
		Select("e.test_case_id, MAX(e.execution_date) AS max_date").
		Group("e.test_case_id")
	err := dao.db.WithContext(ctx).Table("executions AS le").
		Select("le.id, le.test_case_id, COALESCE(le.loi, '') AS loi").
		Joins("JOIN (?) AS m ON le.test_case_id = m.test_case_id AND le.execution_date = m.max_date", latest).
		Order("le.id ASC").
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) Groups(ctx context.Context, f Filter, col GroupColumn) ([]GroupRow, error) {
	var res []GroupRow
	column := "tc." + string(GroupByPlatform)
	if col == GroupByPriority {
		column = "tc." + string(GroupByPriority)
	}
	err := dao.executions(ctx, f).
		Select(column + " AS name, COUNT(e.id) AS total, COALESCE(SUM(" + issueExpr + "), 0) AS issues").
		Group(column).
		Order(column).
		Scan(&res).Error
	return res, err
}

func (dao *GORMStatsDAO) AssignedTesters(ctx context.Context, caseId int64) ([]MemberRow, error) {
	var res []MemberRow
	err := dao.db.WithContext(ctx).Table("test_assignments AS ta").
		Select("u.id, u.name, u.email").
		Joins("JOIN users AS u ON u.id = ta.user_id").
		Where("ta.test_case_id = ?", caseId).
		Order("u.id ASC").
		Scan(&res).Error
	return res, err
}

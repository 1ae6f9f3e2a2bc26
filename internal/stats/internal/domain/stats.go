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
package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
)

// Scope 统计范围，ProjectIds 为 nil 表示全部项目
type Scope struct {
	ProjectIds []int64
	// ProjectId 调用方明确指定的项目
	ProjectId  int64
	TestCaseId int64
}

func AllProjects() Scope {
	return Scope{}
}

func ProjectScope(pid int64) Scope {
	return Scope{ProjectIds: []int64{pid}, ProjectId: pid}
}

// CaseScope 单个用例
func CaseScope(id int64) Scope {
	return Scope{TestCaseId: id}
}

type Overview struct {
	TotalTestCases  int64
	TotalExecutions int64
	TotalUsers      int64
	TotalIssues     int64
}

type StatusCount struct {
	Status casestatus.Coarse
	Count  int64
}

type UserPerformance struct {
	Uid           int64
	Name          string
	Executions    int64
	Issues        int64
	LastExecution time.Time
}

func (u UserPerformance) Passed() int64 {
	return u.Executions - u.Issues
}

// WithAssigned 被分配了但是还没有执行过的测试人员也要出现，执行次数为 0
func WithAssigned(testers []UserPerformance, assigned []Member) []UserPerformance {
	seen := make(map[int64]struct{}, len(testers))
	for _, t := range testers {
		seen[t.Uid] = struct{}{}
	}
	for _, m := range assigned {
		if _, ok := seen[m.Id]; ok {
			continue
		}
		seen[m.Id] = struct{}{}
		testers = append(testers, UserPerformance{Uid: m.Id, Name: m.Name})
	}
	return testers
}

type Activity struct {
	Id            int64
	TestCaseId    int64
	HangMuc       string
	TinhNang      string
	TesterId      int64
	TesterName    string
	Loi           string
	CamNhan       string
	ExecutionDate time.Time
}

func (a Activity) Failed() bool {
	return casestatus.IsFailed(a.Loi)
}

func (a Activity) Status() casestatus.Fine {
	return casestatus.FineStatus(1, a.Loi)
}

// Description 最近动态里面展示的文案
func (a Activity) Description() string {
	name := a.TesterName
	if name == "" {
		name = fmt.Sprintf("#%d", a.TesterId)
	}
	result := "Passed"
	if a.Failed() {
		result = "Failed"
	}
	return fmt.Sprintf("%s đã test \"%s - %s\" (%s)", name, a.HangMuc, a.TinhNang, result)
}

type Dashboard struct {
	Overview
	ExecutionTrend     []Bucket
	StatusDistribution []StatusCount
	UserPerformance    []UserPerformance
	RecentActivity     []Activity
}

// CaseInfo 用例以及累计的执行次数
type CaseInfo struct {
	Id            int64
	ProjectId     int64
	ProjectName   string
	HangMuc       string
	TinhNang      string
	SoLanPhaiTest int64
	Priority      string
	Platform      string
	Ctime         time.Time
	Total         int64
	Issues        int64
}

func (c CaseInfo) Passed() int64 {
	return c.Total - c.Issues
}

func (c CaseInfo) Coarse() casestatus.Coarse {
	return casestatus.CoarseStatus(c.Total, c.SoLanPhaiTest)
}

type CategoryStat struct {
	HangMuc    string
	TotalCases int64
	Completed  int64
	InProgress int64
	NotStarted int64
	Issues     int64
}

type PriorityStat struct {
	Priority  string
	Count     int64
	Completed int64
	Issues    int64
}

type Detailed struct {
	Daily      []Bucket
	Weekly     []Bucket
	Monthly    []Bucket
	Categories []CategoryStat
	Priorities []PriorityStat
	Users      []UserPerformance
}

type TesterStat struct {
	Uid             int64
	Name            string
	Email           string
	TotalExecutions int64
	TotalIssues     int64
	UniqueTestCases int64
	LastExecution   time.Time
	Status          string
}

type ProjectTesterStat struct {
	ProjectId       int64
	ProjectName     string
	TotalTesters    int64
	ActiveTesters   int64
	TotalExecutions int64
	TotalIssues     int64
}

type Testers struct {
	Testers  []TesterStat
	Projects []ProjectTesterStat
}

type Member struct {
	Id    int64
	Name  string
	Email string
}

type TestCaseStats struct {
	TestCase       CaseInfo
	Total          int64
	Passed         int64
	Failed         int64
	CompletionRate int
	PassRate       int
	Remaining      int64
	UniqueTesters  int
	CurrentStatus  casestatus.Fine
	History        []Activity
	Testers        []UserPerformance
	Trend          []Bucket
	Assigned       []Member
}

type GroupStat struct {
	Name   string
	Total  int64
	Failed int64
}

func (g GroupStat) Passed() int64 {
	return g.Total - g.Failed
}

type ProjectStats struct {
	ProjectId      int64
	TotalTestCases int64
	Passed         int64
	Failed         int64
	Pending        int64
	TotalTesters   int64
	ActiveTesters  int64
	Platforms      []GroupStat
	Priorities     []GroupStat
	Trend          []Bucket
}

// ProjectReport 导出报表，GeneratedAt 用来命名文件
type ProjectReport struct {
	ProjectId   int64
	GeneratedAt time.Time
	Cases       []CaseInfo
}

// StatusDistribution 按照粗粒度规则统计，三种状态总是都会返回
func StatusDistribution(cases []CaseInfo) []StatusCount {
	res := []StatusCount{
		{Status: casestatus.Completed},
		{Status: casestatus.InProgress},
		{Status: casestatus.NotStarted},
	}
	for _, c := range cases {
		switch c.Coarse() {
		case casestatus.Completed:
			res[0].Count++
		case casestatus.InProgress:
			res[1].Count++
		default:
			res[2].Count++
		}
	}
	return res
}

// CategoryStats 按照分类统计，分类按照名字排序
func CategoryStats(cases []CaseInfo) []CategoryStat {
	idx := make(map[string]int, 8)
	res := make([]CategoryStat, 0, 8)
	for _, c := range cases {
		i, ok := idx[c.HangMuc]
		if !ok {
			i = len(res)
			idx[c.HangMuc] = i
			res = append(res, CategoryStat{HangMuc: c.HangMuc})
		}
		st := &res[i]
		st.TotalCases++
		st.Issues += c.Issues
		switch c.Coarse() {
		case casestatus.Completed:
			st.Completed++
		case casestatus.InProgress:
			st.InProgress++
		default:
			st.NotStarted++
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].HangMuc < res[j].HangMuc
	})
	return res
}

// PriorityStats 按照优先级统计，顺序是 cao > trung bình > 其他
func PriorityStats(cases []CaseInfo) []PriorityStat {
	idx := make(map[string]int, 4)
	res := make([]PriorityStat, 0, 4)
	for _, c := range cases {
		i, ok := idx[c.Priority]
		if !ok {
			i = len(res)
			idx[c.Priority] = i
			res = append(res, PriorityStat{Priority: c.Priority})
		}
		st := &res[i]
		st.Count++
		st.Issues += c.Issues
		if c.Coarse() == casestatus.Completed {
			st.Completed++
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return lessPriority(res[i].Priority, res[j].Priority)
	})
	return res
}

// SortGroupsByPriority 项目看板里面按优先级分组的数据
func SortGroupsByPriority(groups []GroupStat) []GroupStat {
	sort.SliceStable(groups, func(i, j int) bool {
		return lessPriority(groups[i].Name, groups[j].Name)
	})
	return groups
}

func lessPriority(a, b string) bool {
	ra, rb := casestatus.PriorityRank(a), casestatus.PriorityRank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

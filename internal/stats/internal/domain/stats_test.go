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
	"testing"

	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
	"github.com/stretchr/testify/assert"
)

func TestStatusDistribution(t *testing.T) {
	// A 通过一次，B 失败一次，C 没有执行，都要求 2 次
	cases := []CaseInfo{
		{Id: 1, SoLanPhaiTest: 2, Total: 1},
		{Id: 2, SoLanPhaiTest: 2, Total: 1, Issues: 1},
		{Id: 3, SoLanPhaiTest: 2},
	}
	assert.Equal(t, []StatusCount{
		{Status: casestatus.Completed, Count: 0},
		{Status: casestatus.InProgress, Count: 2},
		{Status: casestatus.NotStarted, Count: 1},
	}, StatusDistribution(cases))

	assert.Equal(t, []StatusCount{
		{Status: casestatus.Completed},
		{Status: casestatus.InProgress},
		{Status: casestatus.NotStarted},
	}, StatusDistribution(nil))
}

func TestCategoryStats(t *testing.T) {
	cases := []CaseInfo{
		{HangMuc: "Thanh toán", SoLanPhaiTest: 1, Total: 3, Issues: 2},
		{HangMuc: "Đăng nhập", SoLanPhaiTest: 2, Total: 1},
		{HangMuc: "Thanh toán", SoLanPhaiTest: 2},
		{HangMuc: "Đăng nhập", SoLanPhaiTest: 1, Total: 1, Issues: 1},
	}
	assert.Equal(t, []CategoryStat{
		{HangMuc: "Thanh toán", TotalCases: 2, Completed: 1, NotStarted: 1, Issues: 2},
		{HangMuc: "Đăng nhập", TotalCases: 2, Completed: 1, InProgress: 1, Issues: 1},
	}, CategoryStats(cases))
}

func TestPriorityStats(t *testing.T) {
	cases := []CaseInfo{
		{Priority: "trung bình", SoLanPhaiTest: 1, Total: 1},
		{Priority: "thấp", SoLanPhaiTest: 1},
		{Priority: "cao", SoLanPhaiTest: 1, Total: 1, Issues: 1},
		{Priority: "cao", SoLanPhaiTest: 2, Total: 1},
	}
	assert.Equal(t, []PriorityStat{
		{Priority: "cao", Count: 2, Completed: 1, Issues: 1},
		{Priority: "trung bình", Count: 1, Completed: 1},
		{Priority: "thấp", Count: 1},
	}, PriorityStats(cases))
}

func TestPriorityStatsMixedValues(t *testing.T) {
	cases := []CaseInfo{
		{Priority: "critical", SoLanPhaiTest: 1},
		{Priority: "high", SoLanPhaiTest: 1},
		{Priority: "cao", SoLanPhaiTest: 1},
		{Priority: "trung bình", SoLanPhaiTest: 1},
		{Priority: "medium", SoLanPhaiTest: 1},
	}
	got := PriorityStats(cases)
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Priority)
	}
	assert.Equal(t, []string{"cao", "trung bình", "critical", "high", "medium"}, names)

	groups := SortGroupsByPriority([]GroupStat{
		{Name: "critical"}, {Name: "trung bình"}, {Name: "cao"},
	})
	assert.Equal(t, []GroupStat{
		{Name: "cao"}, {Name: "trung bình"}, {Name: "critical"},
	}, groups)
}

func TestSortGroupsByPriority(t *testing.T) {
	groups := SortGroupsByPriority([]GroupStat{
		{Name: "low"}, {Name: "medium"}, {Name: "critical"}, {Name: "high"},
	})
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"critical", "high", "medium", "low"}, names)
}

func TestActivityDescription(t *testing.T) {
	a := Activity{TesterName: "Lan", HangMuc: "Login", TinhNang: "OTP", Loi: " "}
	assert.Equal(t, "Lan đã test \"Login - OTP\" (Passed)", a.Description())
	a.Loi = "timeout"
	a.TesterName = ""
	a.TesterId = 7
	assert.Equal(t, "#7 đã test \"Login - OTP\" (Failed)", a.Description())
	assert.Equal(t, casestatus.Failed, a.Status())
}

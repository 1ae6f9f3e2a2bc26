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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuckets(t *testing.T) {
	// 2024-01-03 是周三
	now := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)
	testCases := []struct {
		name       string
		unit       Unit
		n          int
		wantLabels []string
		wantFirst  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "按天",
			unit:       UnitDay,
			n:          7,
			wantLabels: []string{"2023-12-28", "2023-12-29", "2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03"},
			wantFirst:  time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "按周，跨年的 ISO 周",
			unit: UnitWeek,
			n:    3,
			// 2024-01-01 是周一，属于 2024-W01；2023-12-25 属于 2023-W52
			wantLabels: []string{"2023-W51", "2023-W52", "2024-W01"},
			wantFirst:  time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "按月",
			unit:       UnitMonth,
			n:          4,
			wantLabels: []string{"2023-10", "2023-11", "2023-12", "2024-01"},
			wantFirst:  time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bs := NewBuckets(tc.unit, tc.n, now, time.UTC)
			require.Len(t, bs, tc.n)
			labels := make([]string, 0, len(bs))
			for i, b := range bs {
				labels = append(labels, b.Label)
				if i > 0 {
					assert.Equal(t, bs[i-1].End, b.Start)
				}
			}
			assert.Equal(t, tc.wantLabels, labels)
			start, end := Window(bs)
			assert.Equal(t, tc.wantFirst, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestNewBuckets_ISOWeek53(t *testing.T) {
	// 2021-01-01 是周五，属于 2020-W53
	now := time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC)
	bs := NewBuckets(UnitWeek, 1, now, time.UTC)
	require.Len(t, bs, 1)
	assert.Equal(t, "2020-W53", bs[0].Label)
	assert.Equal(t, time.Date(2020, 12, 28, 0, 0, 0, 0, time.UTC), bs[0].Start)
}

func TestNewBuckets_MonthEnd(t *testing.T) {
	// 月底往前推不能因为天数不同而跳月
	now := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	bs := NewBuckets(UnitMonth, 2, now, time.UTC)
	assert.Equal(t, "2024-02", bs[0].Label)
	assert.Equal(t, "2024-03", bs[1].Label)
}

func TestNewBuckets_Location(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	// UTC 的 18 点已经是 ICT 的第二天
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	bs := NewBuckets(UnitDay, 1, now, loc)
	assert.Equal(t, "2024-05-02", bs[0].Label)
}

func TestFill(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	bs := NewBuckets(UnitDay, 7, now, time.UTC)
	points := []Point{
		// 窗口之前
		{At: time.Date(2024, 5, 13, 23, 59, 0, 0, time.UTC)},
		{At: time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)},
		{At: time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC), Failed: true},
		{At: time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC), Failed: true},
		// 窗口之后
		{At: time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)},
	}
	bs = Fill(bs, points)
	require.Len(t, bs, 7)
	var total int64
	for _, b := range bs {
		total += b.Total
	}
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), bs[0].Total)
	assert.Equal(t, int64(1), bs[0].Failed)
	assert.Equal(t, int64(1), bs[0].Passed())
	for _, b := range bs[1:6] {
		assert.Equal(t, int64(0), b.Total)
	}
	assert.Equal(t, int64(1), bs[6].Failed)
	assert.Equal(t, int64(0), bs[6].Passed())
}

func TestFill_Empty(t *testing.T) {
	bs := Fill(NewBuckets(UnitMonth, 12, time.Now(), time.UTC), nil)
	assert.Len(t, bs, 12)
	assert.Empty(t, NewBuckets(UnitDay, 0, time.Now(), time.UTC))
}

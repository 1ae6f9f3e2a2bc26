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
)

type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Bucket 一个时间段内的执行次数，区间左闭右开
type Bucket struct {
	Label  string
	Start  time.Time
	End    time.Time
	Total  int64
	Failed int64
}

func (b Bucket) Passed() int64 {
	return b.Total - b.Failed
}

// Point 一次执行
type Point struct {
	At     time.Time
	Failed bool
}

// NewBuckets 以 now 所在的时间段为最后一个，往前一共 n 个，按照时间升序。
// 周按照 ISO 8601 计算，从周一开始。
func NewBuckets(unit Unit, n int, now time.Time, loc *time.Location) []Bucket {
	if n <= 0 {
		return []Bucket{}
	}
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	last := truncate(unit, now)
	res := make([]Bucket, n)
	for i := 0; i < n; i++ {
		start := shift(unit, last, i-(n-1))
		res[i] = Bucket{
			Label: label(unit, start),
			Start: start,
			End:   shift(unit, start, 1),
		}
	}
	return res
}

// Fill 把落在区间里面的执行累加到对应的桶上，区间外的直接忽略。
// buckets 必须是 NewBuckets 返回的连续升序区间。
func Fill(buckets []Bucket, points []Point) []Bucket {
	if len(buckets) == 0 {
		return buckets
	}
	first, last := buckets[0].Start, buckets[len(buckets)-1].End
	for _, p := range points {
		if p.At.Before(first) || !p.At.Before(last) {
			continue
		}
		idx := sort.Search(len(buckets), func(i int) bool {
			return p.At.Before(buckets[i].End)
		})
		buckets[idx].Total++
		if p.Failed {
			buckets[idx].Failed++
		}
	}
	return buckets
}

// Window 整个序列覆盖的区间
func Window(buckets []Bucket) (time.Time, time.Time) {
	if len(buckets) == 0 {
		return time.Time{}, time.Time{}
	}
	return buckets[0].Start, buckets[len(buckets)-1].End
}

func truncate(unit Unit, t time.Time) time.Time {
	y, m, d := t.Date()
	switch unit {
	case UnitWeek:
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		// 周一是 0
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case UnitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

func shift(unit Unit, t time.Time, k int) time.Time {
	switch unit {
	case UnitWeek:
		return t.AddDate(0, 0, 7*k)
	case UnitMonth:
		return t.AddDate(0, k, 0)
	default:
		return t.AddDate(0, 0, k)
	}
}

func label(unit Unit, start time.Time) string {
	switch unit {
	case UnitWeek:
		y, w := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case UnitMonth:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}

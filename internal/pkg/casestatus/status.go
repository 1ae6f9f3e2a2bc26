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
// Package casestatus 测试用例和执行记录的状态推导规则。
// 详情页用 Fine，汇总统计用 Coarse，两者的结果并不等价，不要混用。
package casestatus

import (
	"math"
	"strings"
	"time"
)

// IsFailed 执行记录的错误描述去掉空白之后非空就是失败
func IsFailed(loi string) bool {
	return strings.TrimSpace(loi) != ""
}

type Fine string

const (
	NotExecuted Fine = "not_executed"
	Passed      Fine = "passed"
	Failed      Fine = "failed"
	// Pending 项目看板里面没有执行记录的用例
	Pending Fine = "pending"
)

func (f Fine) String() string {
	return string(f)
}

// FineStatus count 是执行次数，latestLoi 是 execution_date 最大的那一次执行的错误描述
func FineStatus(count int64, latestLoi string) Fine {
	if count <= 0 {
		return NotExecuted
	}
	if IsFailed(latestLoi) {
		return Failed
	}
	return Passed
}

type Coarse string

const (
	Completed  Coarse = "completed"
	InProgress Coarse = "in_progress"
	NotStarted Coarse = "not_started"
)

func (c Coarse) String() string {
	return string(c)
}

func (c Coarse) Label() string {
	switch c {
	case Completed:
		return "Hoàn thành"
	case InProgress:
		return "Đang test"
	default:
		return "Chưa test"
	}
}

// CoarseStatus 只看执行次数和要求的次数
func CoarseStatus(count, required int64) Coarse {
	switch {
	case count > 0 && count >= required:
		return Completed
	case count > 0:
		return InProgress
	default:
		return NotStarted
	}
}

const (
	TesterIdle     = "Chưa test"
	TesterInactive = "Không hoạt động"
	TesterActive   = "Đang hoạt động"
)

// InactiveAfter 超过这个时间没有执行记录就认为测试人员不活跃
const InactiveAfter = 7 * 24 * time.Hour

// TesterActivity last 为零值表示从来没有执行过
func TesterActivity(last, now time.Time) string {
	if last.IsZero() {
		return TesterIdle
	}
	if now.Sub(last) > InactiveAfter {
		return TesterInactive
	}
	return TesterActive
}

// CompletionRate 百分比，超过要求次数按 100 算，没有达到要求次数最多 99
func CompletionRate(total, required int64) int {
	if total <= 0 || required <= 0 {
		return 0
	}
	res := round(math.Min(float64(total)/float64(required), 1) * 100)
	if total < required && res == 100 {
		return 99
	}
	return res
}

// PassRate 没有执行记录的时候是 0
func PassRate(passed, total int64) int {
	if total <= 0 {
		return 0
	}
	return round(float64(passed) / float64(total) * 100)
}

// Remaining 还需要执行的次数
func Remaining(total, required int64) int64 {
	if total >= required {
		return 0
	}
	return required - total
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// PriorityRank 越小越靠前，只有 cao 和 trung bình 有固定顺序，其余取值并列
func PriorityRank(priority string) int {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "cao":
		return 0
	case "trung bình":
		return 1
	default:
		return 2
	}
}

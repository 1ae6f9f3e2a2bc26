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
	"time"

	"github.com/ecodeclub/testhub/internal/pkg/casestatus"
)

type TestCase struct {
	Id        int64
	ProjectId int64
	// HangMuc 分类
	HangMuc  string
	TinhNang string
	// SoLanPhaiTest 要求执行的次数，至少 1 次
	SoLanPhaiTest int64
	Priority      Priority
	Platform      Platform
	Ctime         time.Time
}

type Priority string

func (p Priority) Valid() bool {
	switch p {
	case "low", "medium", "high", "critical", "cao", "trung bình", "thấp":
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

type Platform string

const (
	PlatformWeb    Platform = "web"
	PlatformApp    Platform = "app"
	PlatformCMS    Platform = "cms"
	PlatformServer Platform = "server"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformWeb, PlatformApp, PlatformCMS, PlatformServer:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// Summary 列表里面展示的用例
type Summary struct {
	TestCase
	ExecutionCount int64
	CurrentStatus  casestatus.Fine
	CompletionRate int
}

type Filter struct {
	ProjectId int64
	Platform  string
	Priority  string
	HangMuc   string
}

func NewSummary(tc TestCase, count int64, latestLoi string) Summary {
	return Summary{
		TestCase:       tc,
		ExecutionCount: count,
		CurrentStatus:  casestatus.FineStatus(count, latestLoi),
		CompletionRate: casestatus.CompletionRate(count, tc.SoLanPhaiTest),
	}
}

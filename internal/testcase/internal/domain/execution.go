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

type Execution struct {
	Id         int64
	TestCaseId int64
	TesterId   int64
	// Loi 错误描述，为空表示通过
	Loi           string
	CamNhan       string
	ExecutionDate time.Time
	Ctime         time.Time
}

func (e Execution) Failed() bool {
	return casestatus.IsFailed(e.Loi)
}

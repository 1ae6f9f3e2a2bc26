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

	"github.com/ecodeclub/testhub/internal/pkg/auth"
)

type User struct {
	Id    int64
	Name  string
	Email string
	// Password 创建的时候是明文，查询出来的是哈希
	Password string
	Role     auth.Role
	Status   Status
	Ctime    time.Time
}

func (u User) Principal() auth.Principal {
	return auth.Principal{
		ID:    u.Id,
		Role:  u.Role,
		Email: u.Email,
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

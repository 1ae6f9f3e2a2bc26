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

package auth

import (
	"github.com/ecodeclub/ginx/session"
)

const (
	claimRole  = "role"
	claimEmail = "email"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTester Role = "tester"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTester
}

// Principal 当前请求的调用方，由 handler 显式传给 service
type Principal struct {
	ID    int64
	Role  Role
	Email string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FromSession 从 session 的 jwt 数据里面还原调用方
func FromSession(sess session.Session) Principal {
	claims := sess.Claims()
	return Principal{
		ID:    claims.Uid,
		Role:  Role(claims.Get(claimRole).StringOrDefault("")),
		Email: claims.Get(claimEmail).StringOrDefault(""),
	}
}

// JwtData 登录的时候写进 token 的数据
func JwtData(p Principal) map[string]string {
	return map[string]string{
		claimRole:  p.Role.String(),
		claimEmail: p.Email,
	}
}

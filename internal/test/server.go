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
package test

import (
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

// NewServer 测试用的 web 服务器
func NewServer() *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	return egin.Load("server").Build()
}

// WithPrincipal 模拟已经登录的用户，get 返回零值的时候视为未登录
func WithPrincipal(get func() auth.Principal) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		p := get()
		if p.ID == 0 {
			return
		}
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  p.ID,
			Data: auth.JwtData(p),
		}))
	}
}

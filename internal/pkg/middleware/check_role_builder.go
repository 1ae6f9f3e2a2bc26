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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 只放行指定角色的用户，必须放在登录校验之后
type CheckRoleMiddlewareBuilder struct {
	roles  []auth.Role
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder(roles ...auth.Role) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Provider(sp session.Provider) *CheckRoleMiddlewareBuilder {
	c.sp = sp
	return c
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sp := c.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		sess, err := sp.Get(gctx)
		if err != nil || sess == nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: http.StatusUnauthorized,
				Msg:  "Unauthorized",
			})
			return
		}
		p := auth.FromSession(sess)
		if !slice.Contains(c.roles, p.Role) {
			c.logger.Warn("越权访问",
				elog.Int64("uid", p.ID),
				elog.String("role", p.Role.String()),
				elog.String("path", ctx.FullPath()))
			ctx.AbortWithStatusJSON(http.StatusForbidden, ginx.Result{
				Code: http.StatusForbidden,
				Msg:  "Forbidden",
			})
			return
		}
	}
}

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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckLoginMiddlewareBuilder 和 session.CheckLoginMiddleware 的区别在于
// 未登录的时候会返回 {"msg": "Unauthorized"}，前端依赖这个结构
type CheckLoginMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckLoginMiddlewareBuilder() *CheckLoginMiddlewareBuilder {
	return &CheckLoginMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

// Provider 测试的时候可以替换
func (b *CheckLoginMiddlewareBuilder) Provider(sp session.Provider) *CheckLoginMiddlewareBuilder {
	b.sp = sp
	return b
}

func (b *CheckLoginMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sp := b.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		sess, err := sp.Get(gctx)
		if err != nil || sess == nil {
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: http.StatusUnauthorized,
				Msg:  "Unauthorized",
			})
			return
		}
		ctx.Set(session.CtxSessionKey, sess)
	}
}

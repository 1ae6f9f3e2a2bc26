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

package ginxx

import (
	"strconv"

	"github.com/ecodeclub/ginx"
)

// Abort 用指定的 HTTP 状态码直接响应。
// 返回的 ginx.ErrNoResponse 告诉 ginx 不要再写一次响应
func Abort(ctx *ginx.Context, status int, code int, msg string) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(status, ginx.Result{
		Code: code,
		Msg:  msg,
	})
	return ginx.Result{}, ginx.ErrNoResponse
}

// SystemError 500，并且把底层错误信息带回去，方便排查
func SystemError(code int, msg string, err error) ginx.Result {
	res := ginx.Result{
		Code: code,
		Msg:  msg,
	}
	if err != nil {
		res.Data = err.Error()
	}
	return res
}

// ParamInt64 读取路径参数
func ParamInt64(ctx *ginx.Context, key string) (int64, bool) {
	val, err := strconv.ParseInt(ctx.Context.Param(key), 10, 64)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}

// QueryInt64 读取可选的查询参数，没有传的时候返回 0，非法或者是负数的时候第二个返回值为 false
func QueryInt64(ctx *ginx.Context, key string) (int64, bool) {
	raw := ctx.Context.Query(key)
	if raw == "" {
		return 0, true
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// QueryInt 分页参数，非法时使用默认值
func QueryInt(ctx *ginx.Context, key string, def int) int {
	raw := ctx.Context.Query(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}

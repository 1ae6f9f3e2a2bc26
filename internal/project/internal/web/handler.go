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
package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/project/internal/domain"
	"github.com/ecodeclub/testhub/internal/project/internal/errs"
	"github.com/ecodeclub/testhub/internal/project/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 登录用户都能访问，测试人员只能看到被授权的项目
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.GET("", ginx.S(h.List))
	g.GET("/:id", ginx.S(h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	offset := ginxx.QueryInt(ctx, "offset", 0)
	limit := ginxx.QueryInt(ctx, "limit", 50)
	prjs, total, err := h.svc.List(ctx, auth.FromSession(sess), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Projects: slice.Map(prjs, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	prj, err := h.svc.Detail(ctx, auth.FromSession(sess), id)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return ginxx.Abort(ctx, http.StatusNotFound, errs.NotFound.Code, errs.NotFound.Msg)
	case errors.Is(err, service.ErrPermissionDenied):
		return ginxx.Abort(ctx, http.StatusForbidden, errs.PermissionDenied.Code, errs.PermissionDenied.Msg)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(prj),
	}, nil
}

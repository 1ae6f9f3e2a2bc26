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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/testcase/internal/domain"
	"github.com/ecodeclub/testhub/internal/testcase/internal/errs"
	"github.com/ecodeclub/testhub/internal/testcase/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 测试人员和管理员都能用
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/projects/:id/test-cases", ginx.S(h.List))
	g := server.Group("/test-cases")
	g.GET("/:id", ginx.S(h.Detail))
	g.GET("/:id/executions", ginx.S(h.Executions))
	g.POST("/:id/executions", ginx.BS[RecordReq](h.Record))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return invalidInput(ctx)
	}
	f := domain.Filter{
		ProjectId: pid,
		Platform:  ctx.Context.Query("platform"),
		Priority:  ctx.Context.Query("priority"),
		HangMuc:   ctx.Context.Query("hang_muc"),
	}
	offset := ginxx.QueryInt(ctx, "offset", 0)
	limit := ginxx.QueryInt(ctx, "limit", 50)
	res, total, err := h.svc.List(ctx, auth.FromSession(sess), f, offset, limit)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: SummaryList{
			TestCases: slice.Map(res, func(idx int, src domain.Summary) Summary {
				return newSummary(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return invalidInput(ctx)
	}
	tc, err := h.svc.Detail(ctx, auth.FromSession(sess), id)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newTestCase(tc),
	}, nil
}

func (h *Handler) Executions(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return invalidInput(ctx)
	}
	offset := ginxx.QueryInt(ctx, "offset", 0)
	limit := ginxx.QueryInt(ctx, "limit", 20)
	es, total, err := h.svc.Executions(ctx, auth.FromSession(sess), id, offset, limit)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: ExecutionList{
			Executions: slice.Map(es, func(idx int, src domain.Execution) Execution {
				return newExecution(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Record(ctx *ginx.Context, req RecordReq, sess session.Session) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok || req.ExecutionDate < 0 {
		return invalidInput(ctx)
	}
	eid, err := h.svc.Record(ctx, auth.FromSession(sess), domain.Execution{
		TestCaseId:    id,
		Loi:           strings.TrimSpace(req.Loi),
		CamNhan:       req.CamNhan,
		ExecutionDate: toTime(req.ExecutionDate),
	})
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: eid,
	}, nil
}

func handleErr(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrTestCaseNotFound):
		return ginxx.Abort(ctx, http.StatusNotFound, errs.NotFound.Code, errs.NotFound.Msg)
	case errors.Is(err, service.ErrProjectNotFound):
		return ginxx.Abort(ctx, http.StatusNotFound, errs.ProjectNotFound.Code, errs.ProjectNotFound.Msg)
	case errors.Is(err, service.ErrPermissionDenied):
		return ginxx.Abort(ctx, http.StatusForbidden, errs.PermissionDenied.Code, errs.PermissionDenied.Msg)
	case errors.Is(err, service.ErrNotAssigned):
		return ginxx.Abort(ctx, http.StatusForbidden, errs.NotAssigned.Code, errs.NotAssigned.Msg)
	default:
		return systemErrorResult, err
	}
}

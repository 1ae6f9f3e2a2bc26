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
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/stats/internal/errs"
	"github.com/ecodeclub/testhub/internal/stats/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	loc    *time.Location
	logger *elog.Component
}

func NewHandler(svc service.Service, loc *time.Location) *Handler {
	return &Handler{
		svc:    svc,
		loc:    loc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/dashboard/stats", ginx.S(h.Dashboard))
	server.GET("/stats/detailed", ginx.S(h.Detailed))
	server.GET("/test-cases/:id/stats", ginx.S(h.TestCase))
	server.GET("/project/:project_id/stats", ginx.S(h.Project))
	server.GET("/export/project-report/:project_id", ginx.S(h.Export))
}

// AdminRoutes 需要放在角色校验之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	server.GET("/stats/testers", ginx.W(h.Testers))
}

func (h *Handler) Dashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, ok := ginxx.QueryInt64(ctx, "project_id")
	if !ok {
		return invalidInput(ctx)
	}
	res, err := h.svc.Dashboard(ctx, auth.FromSession(sess), pid)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newDashboard(res),
	}, nil
}

func (h *Handler) Detailed(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, ok := ginxx.QueryInt64(ctx, "project_id")
	if !ok {
		return invalidInput(ctx)
	}
	res, err := h.svc.Detailed(ctx, auth.FromSession(sess), pid)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newDetailed(res),
	}, nil
}

func (h *Handler) Testers(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Testers(ctx)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newTesters(res),
	}, nil
}

func (h *Handler) TestCase(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return invalidInput(ctx)
	}
	res, err := h.svc.TestCase(ctx, auth.FromSession(sess), id)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newTestCaseStats(res),
	}, nil
}

func (h *Handler) Project(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, ok := ginxx.ParamInt64(ctx, "project_id")
	if !ok {
		return invalidInput(ctx)
	}
	res, err := h.svc.Project(ctx, auth.FromSession(sess), pid)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newProjectStats(res),
	}, nil
}

// Export 目前只支持 csv
func (h *Handler) Export(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	pid, ok := ginxx.ParamInt64(ctx, "project_id")
	if !ok {
		return invalidInput(ctx)
	}
	if format := ctx.Context.DefaultQuery("format", "csv"); format != "csv" {
		return invalidInput(ctx)
	}
	report, err := h.svc.ExportProjectReport(ctx, auth.FromSession(sess), pid)
	if err != nil {
		return h.handleErr(ctx, err)
	}
	// 先写到内存里面，出错的时候还能返回 500
	var buf bytes.Buffer
	if err = writeReport(&buf, report.Cases, h.loc); err != nil {
		return h.handleErr(ctx, err)
	}
	filename := reportFilename(pid, report.GeneratedAt.In(h.loc))
	ctx.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) handleErr(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrTestCaseNotFound):
		return ginxx.Abort(ctx, http.StatusNotFound, errs.TestCaseNotFound.Code, errs.TestCaseNotFound.Msg)
	case errors.Is(err, service.ErrPermissionDenied):
		return ginxx.Abort(ctx, http.StatusForbidden, errs.PermissionDenied.Code, errs.PermissionDenied.Msg)
	default:
		h.logger.Error("统计查询失败", elog.FieldErr(err))
		return systemError(err), err
	}
}

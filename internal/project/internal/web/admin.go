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
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/project/internal/domain"
	"github.com/ecodeclub/testhub/internal/project/internal/errs"
	"github.com/ecodeclub/testhub/internal/project/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("", ginx.B[SaveReq](h.Create))
	g.PUT("/:id", ginx.B[SaveReq](h.Update))
	g.DELETE("/:id", ginx.W(h.Delete))
	g.GET("/:id/access", ginx.W(h.Members))
	g.POST("/:id/access", ginx.B[AccessReq](h.Grant))
	g.DELETE("/:id/access/:uid", ginx.W(h.Revoke))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	prj, ok := h.toDomain(req)
	if !ok || prj.Name == "" {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	id, err := h.svc.Save(ctx, prj)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	prj, ok := h.toDomain(req)
	if !ok || prj.Name == "" {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	prj.Id = id
	_, err := h.svc.Save(ctx, prj)
	if errors.Is(err, service.ErrProjectNotFound) {
		return ginxx.Abort(ctx, http.StatusNotFound, errs.NotFound.Code, errs.NotFound.Msg)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	err := h.svc.Delete(ctx, id)
	if errors.Is(err, service.ErrProjectInUse) {
		return ginxx.Abort(ctx, http.StatusConflict, errs.ProjectInUse.Code, errs.ProjectInUse.Msg)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Members(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	ms, err := h.svc.Members(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ms, func(idx int, src domain.Member) Member {
			return Member{Uid: src.Uid, Ctime: src.Ctime.UnixMilli()}
		}),
	}, nil
}

func (h *AdminHandler) Grant(ctx *ginx.Context, req AccessReq) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok || len(req.UserIds) == 0 {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	err := h.svc.GrantAccess(ctx, id, req.UserIds)
	if errors.Is(err, service.ErrProjectNotFound) {
		return ginxx.Abort(ctx, http.StatusNotFound, errs.NotFound.Code, errs.NotFound.Msg)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Revoke(ctx *ginx.Context) (ginx.Result, error) {
	id, ok1 := ginxx.ParamInt64(ctx, "id")
	uid, ok2 := ginxx.ParamInt64(ctx, "uid")
	if !ok1 || !ok2 {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	if err := h.svc.RevokeAccess(ctx, id, uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) toDomain(req SaveReq) (domain.Project, bool) {
	prj := domain.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      domain.Status(req.Status),
	}
	if prj.Status != "" && !prj.Status.Valid() {
		return prj, false
	}
	return prj, true
}

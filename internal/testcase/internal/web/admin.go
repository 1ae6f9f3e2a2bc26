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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/testcase/internal/service"
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
	g := server.Group("/test-cases")
	g.POST("", ginx.B[SaveReq](h.Create))
	g.PUT("/:id", ginx.B[SaveReq](h.Update))
	g.DELETE("/:id", ginx.W(h.Delete))
	g.POST("/:id/assignments", ginx.B[AssignReq](h.Assign))
	g.DELETE("/:id/assignments/:uid", ginx.W(h.Unassign))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	if !req.valid(true) {
		return invalidInput(ctx)
	}
	id, err := h.svc.Save(ctx, req.toDomain())
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok || !req.valid(false) {
		return invalidInput(ctx)
	}
	tc := req.toDomain()
	tc.Id = id
	_, err := h.svc.Save(ctx, tc)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return invalidInput(ctx)
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok || len(req.UserIds) == 0 {
		return invalidInput(ctx)
	}
	if err := h.svc.Assign(ctx, id, req.UserIds); err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Unassign(ctx *ginx.Context) (ginx.Result, error) {
	id, ok1 := ginxx.ParamInt64(ctx, "id")
	uid, ok2 := ginxx.ParamInt64(ctx, "uid")
	if !ok1 || !ok2 {
		return invalidInput(ctx)
	}
	if err := h.svc.Unassign(ctx, id, uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

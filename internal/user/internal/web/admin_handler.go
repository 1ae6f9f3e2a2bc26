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
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/user/internal/domain"
	"github.com/ecodeclub/testhub/internal/user/internal/errs"
	"github.com/ecodeclub/testhub/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 账号管理，只有管理员能访问
type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("", ginx.B[SaveReq](h.Create))
	g.GET("", ginx.W(h.List))
	g.PUT("/:id", ginx.B[SaveReq](h.Update))
	g.DELETE("/:id", ginx.W(h.Delete))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	u := req.toDomain()
	if u.Name == "" || u.Email == "" || u.Password == "" || !u.Role.Valid() ||
		(u.Status != "" && !u.Status.Valid()) {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	id, err := h.svc.Create(ctx, u)
	if errors.Is(err, service.ErrDuplicateEmail) {
		return ginxx.Abort(ctx, http.StatusConflict, errs.DuplicateUser.Code, errs.DuplicateUser.Msg)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	role := auth.Role(ctx.Context.Query("role"))
	if role != "" && !role.Valid() {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	offset := ginxx.QueryInt(ctx, "offset", 0)
	limit := ginxx.QueryInt(ctx, "limit", 50)
	us, total, err := h.svc.List(ctx, role, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{
			Users: slice.Map(us, func(idx int, src domain.User) Profile {
				return newProfile(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	u := req.toDomain()
	if (u.Role != "" && !u.Role.Valid()) || (u.Status != "" && !u.Status.Valid()) {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	u.Id = id
	err := h.svc.Update(ctx, u)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return ginxx.Abort(ctx, http.StatusNotFound, errs.UserNotFound.Code, errs.UserNotFound.Msg)
	case errors.Is(err, service.ErrDuplicateEmail):
		return ginxx.Abort(ctx, http.StatusConflict, errs.DuplicateUser.Code, errs.DuplicateUser.Msg)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := ginxx.ParamInt64(ctx, "id")
	if !ok {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

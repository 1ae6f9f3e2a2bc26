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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/testhub/internal/pkg/auth"
	"github.com/ecodeclub/testhub/internal/pkg/ginxx"
	"github.com/ecodeclub/testhub/internal/user/internal/errs"
	"github.com/ecodeclub/testhub/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/token/refresh", ginx.W(h.RefreshAccessToken))
	users.POST("/logout", ginx.W(h.Logout))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/users/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if req.Email == "" || req.Password == "" {
		return ginxx.Abort(ctx, http.StatusBadRequest, errs.InvalidInput.Code, errs.InvalidInput.Msg)
	}
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidUserOrPassword):
		return ginxx.Abort(ctx, http.StatusUnauthorized, errs.LoginFailed.Code, errs.LoginFailed.Msg)
	case errors.Is(err, service.ErrUserInactive):
		return ginxx.Abort(ctx, http.StatusForbidden, errs.UserInactive.Code, errs.UserInactive.Msg)
	case err != nil:
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(auth.JwtData(u.Principal())).
		Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Logout(ctx *ginx.Context) (ginx.Result, error) {
	err := session.DefaultProvider().Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrUserNotFound) {
		return ginxx.Abort(ctx, http.StatusNotFound, errs.UserNotFound.Code, errs.UserNotFound.Msg)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

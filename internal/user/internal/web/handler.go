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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/lms/internal/user/internal/errs"
	"github.com/ecodeclub/lms/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.PreferenceService
}

func NewHandler(svc service.PreferenceService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users/preferences")
	g.POST("/get", ginx.BS[PreferenceReq](h.Get))
	g.POST("/set", ginx.BS[PreferenceReq](h.Set))
	g.POST("/unset", ginx.BS[PreferenceReq](h.Unset))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Get(ctx *ginx.Context, req PreferenceReq, sess session.Session) (ginx.Result, error) {
	val, err := h.svc.GetPreference(ctx, sess.Claims().Uid, req.Name, "")
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Preference{Name: req.Name, Value: val},
	}, nil
}

func (h *Handler) Set(ctx *ginx.Context, req PreferenceReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetPreference(ctx, sess.Claims().Uid, req.Name, req.Value)
	switch {
	case errors.Is(err, service.ErrPreferenceValueTooLong):
		return ginx.Result{
			Code: errs.PreferenceValueTooLong.Code,
			Msg:  errs.PreferenceValueTooLong.Msg,
		}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}

func (h *Handler) Unset(ctx *ginx.Context, req PreferenceReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UnsetPreference(ctx, sess.Claims().Uid, req.Name)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation/internal/domain"
	"github.com/ecodeclub/lms/internal/navigation/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/navigation")
	g.POST("/breadcrumbs", ginx.B[BreadcrumbReq](h.Breadcrumbs))
}

func (h *Handler) Breadcrumbs(ctx *ginx.Context, req BreadcrumbReq) (ginx.Result, error) {
	nodes, err := h.svc.Breadcrumbs(ctx, req.ContextID)
	switch {
	case errors.Is(err, course.ErrNotFound):
		return contextNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: slice.Map(nodes, func(idx int, src domain.Node) Node {
				return newNode(src)
			}),
		}, nil
	}
}

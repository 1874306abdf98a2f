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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckSiteAdminMiddlewareBuilder 只放行站点管理员，需要放在登录校验之后
type CheckSiteAdminMiddlewareBuilder struct {
	svc    permission.Service
	sp     session.Provider
	logger *elog.Component
}

func NewCheckSiteAdminMiddlewareBuilder(svc permission.Service) *CheckSiteAdminMiddlewareBuilder {
	return &CheckSiteAdminMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckSiteAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := c.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		uid := sess.Claims().Uid
		if !c.svc.IsSiteAdmin(permission.Actor{Uid: uid}) {
			ctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("非法访问 admin 接口，不是站点管理员", elog.Int64("uid", uid))
			return
		}
	}
}

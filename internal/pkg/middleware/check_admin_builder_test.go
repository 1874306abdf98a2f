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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/lms/internal/permission"
	permissionmocks "github.com/ecodeclub/lms/internal/permission/mocks"
	"github.com/ecodeclub/lms/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckSiteAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		login    bool
		mock     func(ctrl *gomock.Controller) permission.Service
		wantCode int
	}{
		{
			name:  "站点管理员",
			login: true,
			mock: func(ctrl *gomock.Controller) permission.Service {
				svc := permissionmocks.NewMockService(ctrl)
				svc.EXPECT().IsSiteAdmin(permission.Actor{Uid: 1}).Return(true)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "普通用户",
			login: true,
			mock: func(ctrl *gomock.Controller) permission.Service {
				svc := permissionmocks.NewMockService(ctrl)
				svc.EXPECT().IsSiteAdmin(permission.Actor{Uid: 1}).Return(false)
				return svc
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) permission.Service {
				return permissionmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := NewCheckSiteAdminMiddlewareBuilder(tc.mock(ctrl))
			b.sp = &test.SessionProvider{}
			server := gin.New()
			if tc.login {
				server.Use(test.SessionMiddleware(1))
			}
			server.Use(b.Build())
			server.POST("/course/save", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/course/save", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

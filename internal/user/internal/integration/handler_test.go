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

//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/lms/internal/test"
	testioc "github.com/ecodeclub/lms/internal/test/ioc"
	"github.com/ecodeclub/lms/internal/user"
	"github.com/ecodeclub/lms/internal/user/internal/repository/dao"
	"github.com/ecodeclub/lms/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandleTestSuite))
}

func (s *HandleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	m := user.InitModule(s.db, testioc.InitCache())
	server.Use(test.SessionMiddleware(uid))
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `user_preferences`").Error
	require.NoError(s.T(), err)
}

func (s *HandleTestSuite) TestSetAndGet() {
	t := s.T()
	resp := s.post(t, "/users/preferences/set", web.PreferenceReq{Name: "recently_viewed_open_banks", Value: "7,5"})
	assert.Equal(t, test.Result[any]{Msg: "OK"}, resp)

	// 覆盖
	resp = s.post(t, "/users/preferences/set", web.PreferenceReq{Name: "recently_viewed_open_banks", Value: "9,7,5"})
	assert.Equal(t, test.Result[any]{Msg: "OK"}, resp)

	var p dao.UserPreference
	err := s.db.Where("uid = ? AND name = ?", uid, "recently_viewed_open_banks").First(&p).Error
	require.NoError(t, err)
	assert.Equal(t, "9,7,5", p.Value)

	req, err := http.NewRequest(http.MethodPost,
		"/users/preferences/get", iox.NewJSONReader(web.PreferenceReq{Name: "recently_viewed_open_banks"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Preference]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.Preference{Name: "recently_viewed_open_banks", Value: "9,7,5"}, recorder.MustScan().Data)

	resp = s.post(t, "/users/preferences/unset", web.PreferenceReq{Name: "recently_viewed_open_banks"})
	assert.Equal(t, test.Result[any]{Msg: "OK"}, resp)
	var cnt int64
	err = s.db.Model(&dao.UserPreference{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func (s *HandleTestSuite) post(t *testing.T, path string, body any) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/course/internal/errs"
	"github.com/ecodeclub/lms/internal/course/internal/web"
	"github.com/ecodeclub/lms/internal/test"
	testioc "github.com/ecodeclub/lms/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CourseTestSuite struct {
	suite.Suite
	db       *egorm.Component
	server   *egin.Component
	svc      course.Service
	consumer mq.Consumer
}

func TestCourse(t *testing.T) {
	suite.Run(t, new(CourseTestSuite))
}

func (s *CourseTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	m, err := course.InitModule(s.db, testioc.InitCache(), q)
	require.NoError(t, err)
	s.consumer, err = q.Consumer(course.CourseEventName, "course-e2e")
	require.NoError(t, err)

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.svc = m.Svc
}

func (s *CourseTestSuite) TearDownTest() {
	stmts := []string{
		"TRUNCATE TABLE `course_modules`",
		"DELETE FROM `course_sections` WHERE `course` > 1",
		"DELETE FROM `contexts` WHERE `id` > 2",
		"DELETE FROM `courses` WHERE `id` > 1",
	}
	for _, stmt := range stmts {
		require.NoError(s.T(), s.db.Exec(stmt).Error)
	}
}

func (s *CourseTestSuite) TestSave() {
	t := s.T()
	res := post[int64](t, s.server, "/course/save", web.SaveReq{
		Course: web.Course{ShortName: "go", FullName: "Go 入门"},
	})
	require.Equal(t, 0, res.Code)
	id := res.Data
	require.True(t, id > 1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	cctx, err := s.svc.CourseContext(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, course.ContextCourse, cctx.Level)
	assert.Equal(t, fmt.Sprintf("/%d/%d", course.SystemContextID, cctx.ID), cctx.Path)
	s.assertEvent(course.CourseEvent{CourseID: id, ShortName: "go", FullName: "Go 入门", Action: course.CourseActionCreated})

	// 更新不会重复创建上下文
	res = post[int64](t, s.server, "/course/save", web.SaveReq{
		Course: web.Course{ID: id, ShortName: "go", FullName: "Go 进阶"},
	})
	require.Equal(t, id, res.Data)
	detail := post[web.Course](t, s.server, "/course/detail", web.CourseID{ID: id})
	assert.Equal(t, "Go 进阶", detail.Data.FullName)
	s.assertEvent(course.CourseEvent{CourseID: id, ShortName: "go", FullName: "Go 进阶", Action: "updated"})
}

func (s *CourseTestSuite) TestDetailNotFound() {
	res := post[web.Course](s.T(), s.server, "/course/detail", web.CourseID{ID: 10086})
	assert.Equal(s.T(), errs.CourseNotFound.Code, res.Code)
}

func (s *CourseTestSuite) TestAddModule() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	id, err := s.svc.Save(ctx, course.Course{ShortName: "db", FullName: "数据库"})
	require.NoError(t, err)
	cctx, err := s.svc.CourseContext(ctx, id)
	require.NoError(t, err)

	cm, err := s.svc.AddModule(ctx, course.ModuleInfo{
		CourseID:   id,
		ModName:    "forum",
		Instance:   7,
		SectionNum: 1,
		Visible:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "forum", cm.ModName)
	assert.Equal(t, 1, cm.SectionNum)

	mctx, err := s.svc.ModuleContext(ctx, cm.ID)
	require.NoError(t, err)
	assert.Equal(t, cctx.ChildPath(mctx.ID), mctx.Path)
	assert.Equal(t, []int64{course.SystemContextID, cctx.ID, mctx.ID}, mctx.PathIDs())

	info, err := s.svc.ModInfo(ctx, id)
	require.NoError(t, err)
	forums := info.InstancesOf("forum")
	require.Len(t, forums, 1)
	assert.Equal(t, int64(7), forums[0].Instance)
	assert.Equal(t, mctx.ID, forums[0].ContextID)

	_, err = s.svc.AddModule(ctx, course.ModuleInfo{CourseID: id, ModName: "wiki"})
	assert.ErrorIs(t, err, course.ErrUnknownModule)
}

func (s *CourseTestSuite) TestModuleEnabled() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	ok, err := s.svc.ModuleEnabled(ctx, "qbank")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.svc.ModuleEnabled(ctx, "wiki")
	require.NoError(t, err)
	assert.False(t, ok)
}

func (s *CourseTestSuite) assertEvent(want course.CourseEvent) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt course.CourseEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, want, evt)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank"
	"github.com/ecodeclub/lms/internal/qbank/internal/errs"
	"github.com/ecodeclub/lms/internal/qbank/internal/repository/dao"
	"github.com/ecodeclub/lms/internal/qbank/internal/web"
	"github.com/ecodeclub/lms/internal/test"
	testioc "github.com/ecodeclub/lms/internal/test/ioc"
	"github.com/ecodeclub/lms/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type QBankTestSuite struct {
	suite.Suite
	db      *egorm.Component
	server  *egin.Component
	courses course.Service
	perms   permission.Service
	svc     qbank.Service
}

func TestQBank(t *testing.T) {
	suite.Run(t, new(QBankTestSuite))
}

func (s *QBankTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()

	cm, err := course.InitModule(s.db, ec, q)
	require.NoError(t, err)
	pm, err := permission.InitModule(s.db, q)
	require.NoError(t, err)
	um := user.InitModule(s.db, ec)
	nm := navigation.InitModule(cm)
	m, err := qbank.InitModule(s.db, cm, pm, um, nm, q)
	require.NoError(t, err)

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(test.SessionMiddleware(uid))
	m.Hdl.PrivateRoutes(server.Engine)
	nm.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.courses = cm.Svc
	s.perms = pm.Svc
	s.svc = m.Svc
}

func (s *QBankTestSuite) TearDownTest() {
	// 站点课程和系统上下文在建表的时候初始化，不能清空
	stmts := []string{
		"TRUNCATE TABLE `qbank`",
		"TRUNCATE TABLE `question_categories`",
		"TRUNCATE TABLE `course_modules`",
		"TRUNCATE TABLE `role_assignments`",
		"TRUNCATE TABLE `user_preferences`",
		"DELETE FROM `course_sections` WHERE `course` > 1",
		"DELETE FROM `contexts` WHERE `id` > 2",
		"DELETE FROM `courses` WHERE `id` > 1",
	}
	for _, stmt := range stmts {
		require.NoError(s.T(), s.db.Exec(stmt).Error)
	}
}

// newCourse 新建课程，editor 为 true 时当前用户是课程的编辑教师
func (s *QBankTestSuite) newCourse(name string, editor bool) (course.Course, course.Context) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c := course.Course{ShortName: name, FullName: name + " course"}
	id, err := s.courses.Save(ctx, c)
	require.NoError(t, err)
	c.ID = id
	cctx, err := s.courses.CourseContext(ctx, id)
	require.NoError(t, err)
	if editor {
		err = s.perms.Assign(ctx, []permission.RoleAssignment{
			{Uid: uid, Role: "editingteacher", ContextID: cctx.ID},
		})
		require.NoError(t, err)
	}
	return c, cctx
}

func (s *QBankTestSuite) TestCreateAndList() {
	t := s.T()
	c, _ := s.newCourse("go", true)
	other, _ := s.newCourse("rust", true)

	cm := post[web.CourseModule](s, "/qbank/create", web.CreateReq{CourseID: c.ID, Name: "Go bank"}).Data
	require.True(t, cm.ID > 0)
	require.True(t, cm.ContextID > 0)
	post[web.CourseModule](s, "/qbank/create", web.CreateReq{CourseID: other.ID, Name: "Rust bank"})

	// 新题库有一个顶级分类和一个默认分类
	var cats []dao.QuestionCategory
	err := s.db.Where("contextid = ?", cm.ContextID).Order("id").Find(&cats).Error
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "top", cats[0].Name)
	assert.Equal(t, "Default for Go bank", cats[1].Name)

	banks := post[[]web.Bank](s, "/qbank/shared/list", web.ListReq{
		InCourseIDs:    []int64{c.ID},
		WithCategories: true,
		CurrentBankID:  cm.ID,
		Capabilities:   []string{"moodle/question:useall"},
	}).Data
	require.Len(t, banks, 1)
	assert.Equal(t, "Go bank", banks[0].Name)
	assert.Equal(t, "go - Go bank", banks[0].CourseNameBankName)
	assert.Equal(t, []web.Category{
		{ID: cats[1].Id, Name: "Default for Go bank", ContextID: cm.ContextID, Enabled: true},
	}, banks[0].Categories)

	banks = post[[]web.Bank](s, "/qbank/shared/list", web.ListReq{
		NotInCourseIDs: []int64{c.ID},
	}).Data
	require.Len(t, banks, 1)
	assert.Equal(t, "Rust bank", banks[0].Name)

	// 测验不公开题目
	banks = post[[]web.Bank](s, "/qbank/private/list", web.ListReq{}).Data
	assert.Empty(t, banks)
}

func (s *QBankTestSuite) TestCreate_PermissionDenied() {
	c, _ := s.newCourse("go", false)
	res := post[any](s, "/qbank/create", web.CreateReq{CourseID: c.ID, Name: "Go bank"})
	assert.Equal(s.T(), errs.PermissionDenied.Code, res.Code)
}

func (s *QBankTestSuite) TestRecentlyViewed() {
	t := s.T()
	c, _ := s.newCourse("go", true)
	cm := post[web.CourseModule](s, "/qbank/create", web.CreateReq{CourseID: c.ID, Name: "Go bank"}).Data

	res := post[any](s, "/qbank/viewed", web.ViewedReq{ContextID: cm.ContextID})
	assert.Equal(t, "OK", res.Msg)
	banks := post[[]web.Bank](s, "/qbank/recent", web.RecentReq{}).Data
	require.Len(t, banks, 1)
	assert.Equal(t, cm.ID, banks[0].ModID)

	// 排除当前课程
	banks = post[[]web.Bank](s, "/qbank/recent", web.RecentReq{ExcludeCourseID: c.ID}).Data
	assert.Empty(t, banks)

	// 失效的上下文会被清理
	err := s.db.Exec("UPDATE `course_modules` SET `deletioninprogress` = true WHERE `id` = ?", cm.ID).Error
	require.NoError(t, err)
	banks = post[[]web.Bank](s, "/qbank/recent", web.RecentReq{}).Data
	assert.Empty(t, banks)
	var cnt int64
	err = s.db.Table("user_preferences").Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func (s *QBankTestSuite) TestBankList_CreateDefault() {
	t := s.T()
	c, _ := s.newCourse("go", true)

	res := get[web.BankList](s, fmt.Sprintf("/question/banks?courseid=%d&createdefault=1", c.ID)).Data
	require.Len(t, res.Banks, 1)
	assert.Equal(t, "go course course question bank", res.Banks[0].Name)

	// 再次访问不会重复创建
	res = get[web.BankList](s, fmt.Sprintf("/question/banks?courseid=%d&createdefault=1", c.ID)).Data
	assert.Len(t, res.Banks, 1)
}

func (s *QBankTestSuite) TestSystemAndPreviewBank() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c, _ := s.newCourse("go", false)

	sys, err := s.svc.SystemBank(ctx, c.ID, true)
	require.NoError(t, err)
	again, err := s.svc.SystemBank(ctx, c.ID, false)
	require.NoError(t, err)
	assert.Equal(t, sys.ID, again.ID)

	preview, err := s.svc.PreviewBank(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, course.SiteID, preview.CourseID)

	// 预览题库不会出现在列表中
	banks, err := s.svc.ListBankInstances(ctx, permission.Actor{Uid: uid}, qbank.ListQuery{
		Type: "shared",
	})
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, sys.ID, banks[0].ModID)
}

func (s *QBankTestSuite) TestBreadcrumbs() {
	t := s.T()
	c, _ := s.newCourse("go", true)
	cm := post[web.CourseModule](s, "/qbank/create", web.CreateReq{CourseID: c.ID, Name: "Go bank"}).Data

	type node struct {
		Type   string `json:"type"`
		Text   string `json:"text"`
		Action string `json:"action"`
	}
	nodes := post[[]node](s, "/navigation/breadcrumbs", map[string]int64{"contextId": cm.ContextID}).Data
	require.Len(t, nodes, 4)
	assert.Equal(t, node{
		Type:   "custom",
		Text:   "Question banks",
		Action: fmt.Sprintf("/question/banks?courseid=%d", c.ID),
	}, nodes[2])
}

func (s *QBankTestSuite) TestSwitchBankModal() {
	t := s.T()
	c, _ := s.newCourse("go", true)
	cm := post[web.CourseModule](s, "/qbank/create", web.CreateReq{CourseID: c.ID, Name: "Go bank"}).Data

	// 用题库自身的模块上下文充当测验
	modal := post[web.Modal](s, "/quiz/modal/switch_bank", web.ModalReq{
		FragmentReq: web.FragmentReq{ContextID: cm.ContextID, QuizCMID: cm.ID, BankModID: cm.ID},
		Title:       "Add from question bank",
	}).Data
	assert.Equal(t, "Select question bank", modal.Title)
	assert.Contains(t, modal.Footer, `data-action="go-back"`)
	assert.Contains(t, modal.Body, "go - Go bank")
	assert.Equal(t, []web.Autocomplete{{Selector: "[name=searchbanks]", Placeholder: "Search by name"}},
		modal.Autocompletes)
	assert.Equal(t, map[string][]string{".search-banks .form-autocomplete-selection": {"d-none"}},
		modal.Classes)
}

func post[T any](s *QBankTestSuite, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	return serve[T](s, req)
}

func get[T any](s *QBankTestSuite, path string) test.Result[T] {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(s.T(), err)
	return serve[T](s, req)
}

func serve[T any](s *QBankTestSuite, req *http.Request) test.Result[T] {
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

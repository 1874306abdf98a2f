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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/lms/internal/course"
	coursemocks "github.com/ecodeclub/lms/internal/course/mocks"
	"github.com/ecodeclub/lms/internal/permission"
	permissionmocks "github.com/ecodeclub/lms/internal/permission/mocks"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	repomocks "github.com/ecodeclub/lms/internal/qbank/internal/repository/mocks"
	usermocks "github.com/ecodeclub/lms/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPlugins = []course.Plugin{
	{Name: "qbank", Features: []course.Feature{course.FeatureUsesQuestions, course.FeaturePublishesQuestions}},
	{Name: "quiz", Features: []course.Feature{course.FeatureUsesQuestions}},
	{Name: "forum"},
}

var actor = permission.Actor{Uid: 123}

type testMocks struct {
	repo      *repomocks.MockBankRepository
	courseSvc *coursemocks.MockService
	permSvc   *permissionmocks.MockService
	prefSvc   *usermocks.MockPreferenceService
}

func newTestService(ctrl *gomock.Controller) (Service, testMocks) {
	m := testMocks{
		repo:      repomocks.NewMockBankRepository(ctrl),
		courseSvc: coursemocks.NewMockService(ctrl),
		permSvc:   permissionmocks.NewMockService(ctrl),
		prefSvc:   usermocks.NewMockPreferenceService(ctrl),
	}
	return NewService(m.repo, NewPluginTypes(testPlugins), m.courseSvc, m.permSvc, m.prefSvc), m
}

func TestPluginTypes(t *testing.T) {
	types := NewPluginTypes(testPlugins)
	assert.Equal(t, []string{"qbank"}, types.Shared())
	assert.Equal(t, []string{"quiz"}, types.Private())
	assert.Equal(t, []string{"qbank", "quiz"}, types.All())

	shared, err := types.Of(domain.PluginTypeShared)
	require.NoError(t, err)
	assert.Equal(t, []string{"qbank"}, shared)

	_, err = types.Of(domain.PluginType("all"))
	assert.ErrorIs(t, err, ErrInvalidPluginType)

	// 返回的是副本
	shared[0] = "changed"
	assert.Equal(t, []string{"qbank"}, types.Shared())
}

func bankRecord(cmID, courseID, ctxID int64, name string) domain.BankRecord {
	return domain.BankRecord{
		CM:              course.CourseModule{ID: cmID, CourseID: courseID, ModName: "qbank", ContextID: ctxID},
		Name:            name,
		CourseShortName: "c" + name,
	}
}

func TestService_ListBankInstances(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m testMocks)
		q       domain.ListQuery
		wantIDs []int64
		wantErr error
	}{
		{
			name: "不需要能力",
			mock: func(m testMocks) {
				m.repo.EXPECT().List(gomock.Any(), []string{"qbank"}, gomock.Any()).
					Return([]domain.BankRecord{bankRecord(7, 3, 30, "a"), bankRecord(8, 4, 31, "b")}, nil)
			},
			q:       domain.ListQuery{Type: domain.PluginTypeShared},
			wantIDs: []int64{7, 8},
		},
		{
			name: "按能力过滤",
			mock: func(m testMocks) {
				m.repo.EXPECT().List(gomock.Any(), []string{"quiz"}, gomock.Any()).
					Return([]domain.BankRecord{bankRecord(7, 3, 30, "a"), bankRecord(8, 4, 31, "b")}, nil)
				m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{30, 31}).
					Return(map[int64]course.Context{
						30: {ID: 30, Level: course.ContextModule, Path: "/1/9/30"},
					}, nil)
				m.permSvc.EXPECT().FilterByAnyCapability(gomock.Any(), actor,
					[][]int64{{1, 9, 30}, {31}}, UseCaps).
					Return([]bool{false, true}, nil)
			},
			q:       domain.ListQuery{Type: domain.PluginTypePrivate, Capabilities: UseCaps},
			wantIDs: []int64{8},
		},
		{
			name:    "插件分类不对",
			mock:    func(m testMocks) {},
			q:       domain.ListQuery{Type: "unknown"},
			wantErr: ErrInvalidPluginType,
		},
		{
			name: "查询出错",
			mock: func(m testMocks) {
				m.repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			q:       domain.ListQuery{Type: domain.PluginTypeShared},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			banks, err := svc.ListBankInstances(context.Background(), actor, tc.q)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(banks))
			for _, b := range banks {
				ids = append(ids, b.ModID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestService_RecentlyViewed(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m testMocks)
		exclude int64
		wantIDs []int64
		wantErr error
	}{
		{
			name: "没有偏好",
			mock: func(m testMocks) {
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("", nil)
			},
			wantIDs: []int64{},
		},
		{
			name: "清理失效的上下文并排除当前课程",
			mock: func(m testMocks) {
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("30,abc,31,32,33", nil)
				m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{30, 31, 32, 33}).
					Return(map[int64]course.Context{
						30: {ID: 30, Level: course.ContextModule, InstanceID: 7},
						31: {ID: 31, Level: course.ContextModule, InstanceID: 8},
						33: {ID: 33, Level: course.ContextModule, InstanceID: 9},
					}, nil)
				// 8 已经删除
				m.repo.EXPECT().FindByCMIDs(gomock.Any(), []string{"qbank", "quiz"}, []int64{7, 8, 9}).
					Return([]domain.BankRecord{bankRecord(9, 5, 33, "b"), bankRecord(7, 3, 30, "a")}, nil)
				m.prefSvc.EXPECT().SetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "30,33").
					Return(nil)
			},
			exclude: 5,
			wantIDs: []int64{7},
		},
		{
			name: "全部失效",
			mock: func(m testMocks) {
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("40", nil)
				m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{40}).
					Return(map[int64]course.Context{}, nil)
				m.repo.EXPECT().FindByCMIDs(gomock.Any(), gomock.Any(), []int64{}).
					Return([]domain.BankRecord{}, nil)
				m.prefSvc.EXPECT().UnsetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference).
					Return(nil)
			},
			wantIDs: []int64{},
		},
		{
			name: "回写失败不影响结果",
			mock: func(m testMocks) {
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("30,x", nil)
				m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{30}).
					Return(map[int64]course.Context{
						30: {ID: 30, Level: course.ContextModule, InstanceID: 7},
					}, nil)
				m.repo.EXPECT().FindByCMIDs(gomock.Any(), gomock.Any(), []int64{7}).
					Return([]domain.BankRecord{bankRecord(7, 3, 30, "a")}, nil)
				m.prefSvc.EXPECT().SetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "30").
					Return(errors.New("db error"))
			},
			wantIDs: []int64{7},
		},
		{
			name: "上下文级别不对",
			mock: func(m testMocks) {
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("9", nil)
				m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{9}).
					Return(map[int64]course.Context{
						9: {ID: 9, Level: course.ContextCourse, InstanceID: 3},
					}, nil)
			},
			wantErr: ErrInvalidContextLevel,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			banks, err := svc.RecentlyViewed(context.Background(), actor, tc.exclude)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			ids := make([]int64, 0, len(banks))
			for _, b := range banks {
				ids = append(ids, b.ModID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestService_AddToRecentlyViewed(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(m testMocks)
		contextID int64
		wantErr   error
	}{
		{
			name: "放到最前面",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Context(gomock.Any(), int64(31)).
					Return(course.Context{ID: 31, Level: course.ContextModule}, nil)
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("30,31,32,33,34", nil)
				m.prefSvc.EXPECT().SetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference,
					"31,30,32,33,34").Return(nil)
			},
			contextID: 31,
		},
		{
			name: "超过上限",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Context(gomock.Any(), int64(40)).
					Return(course.Context{ID: 40, Level: course.ContextModule}, nil)
				m.prefSvc.EXPECT().GetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference, "").
					Return("30,31,32,33,34", nil)
				m.prefSvc.EXPECT().SetPreference(gomock.Any(), int64(123), domain.RecentlyViewedPreference,
					"40,30,31,32,33").Return(nil)
			},
			contextID: 40,
		},
		{
			name: "不是模块上下文",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Context(gomock.Any(), int64(9)).
					Return(course.Context{ID: 9, Level: course.ContextCourse}, nil)
			},
			contextID: 9,
			wantErr:   ErrInvalidContextLevel,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			err := svc.AddToRecentlyViewed(context.Background(), actor, tc.contextID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_SystemBank(t *testing.T) {
	c := course.Course{ID: 3, FullName: "Go", GroupMode: course.GroupMode(1), DefaultGroupingID: 6}
	testCases := []struct {
		name    string
		mock    func(m testMocks)
		create  bool
		wantCM  course.CourseModule
		wantErr error
	}{
		{
			name: "已经存在",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(c, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), int64(3), domain.SubtypeSystem).
					Return([]int64{7}, nil)
				m.courseSvc.EXPECT().ModInfo(gomock.Any(), int64(3)).Return(course.ModInfo{
					CourseID: 3,
					CMs: []course.CourseModule{
						{ID: 6, ModName: "quiz"},
						{ID: 7, ModName: "qbank", ContextID: 30},
					},
				}, nil)
			},
			wantCM: course.CourseModule{ID: 7, ModName: "qbank", ContextID: 30},
		},
		{
			name: "不存在也不创建",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(c, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), int64(3), domain.SubtypeSystem).
					Return([]int64{}, nil)
			},
			wantErr: ErrBankNotFound,
		},
		{
			name: "创建",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(c, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), int64(3), domain.SubtypeSystem).
					Return([]int64{}, nil)
				m.repo.EXPECT().CreateInstance(gomock.Any(), domain.Instance{
					Course:      3,
					Name:        domain.Str("systembank"),
					Intro:       domain.Str("systembankdescription"),
					IntroFormat: domain.FormatHTML,
					Type:        domain.SubtypeSystem,
				}).Return(int64(11), nil)
				m.courseSvc.EXPECT().AddModule(gomock.Any(), course.ModuleInfo{
					CourseID:        3,
					ModName:         "qbank",
					Instance:        11,
					GroupMode:       course.GroupMode(1),
					GroupingID:      6,
					ShowDescription: true,
					DownloadContent: true,
				}).Return(course.CourseModule{ID: 8, ModName: "qbank", ContextID: 31}, nil)
				m.repo.EXPECT().CreateDefaultCategories(gomock.Any(), int64(31), domain.Str("systembank")).
					Return(nil)
			},
			create: true,
			wantCM: course.CourseModule{ID: 8, ModName: "qbank", ContextID: 31},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			cm, err := svc.SystemBank(context.Background(), 3, tc.create)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantCM, cm)
		})
	}
}

func TestService_PreviewBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.courseSvc.EXPECT().Get(gomock.Any(), course.SiteID).Return(course.Course{ID: course.SiteID}, nil)
	m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), course.SiteID, domain.SubtypePreview).
		Return([]int64{}, nil)
	m.repo.EXPECT().CreateInstance(gomock.Any(), domain.Instance{
		Course: course.SiteID,
		Name:   domain.Str("previewbank"),
		Type:   domain.SubtypePreview,
	}).Return(int64(12), nil)
	m.courseSvc.EXPECT().AddModule(gomock.Any(), gomock.Any()).
		Return(course.CourseModule{ID: 9, CourseID: course.SiteID, ContextID: 32}, nil)
	m.repo.EXPECT().CreateDefaultCategories(gomock.Any(), int64(32), domain.Str("previewbank")).
		Return(errors.New("db error"))

	// 默认分类创建失败不影响题库本身
	cm, err := svc.PreviewBank(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cm.ID)
}

func TestService_CreateDefaultInstance(t *testing.T) {
	c := course.Course{ID: 3, FullName: "Go"}
	site := course.Course{ID: course.SiteID, ShortName: "lms", FullName: "LMS"}
	courseCtx := course.Context{ID: 9, Level: course.ContextCourse, InstanceID: 3, Path: "/1/9"}
	canAdd := func(m testMocks, manage, add, enabled bool) {
		m.courseSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(c, nil)
		m.courseSvc.EXPECT().CourseContext(gomock.Any(), int64(3)).Return(courseCtx, nil)
		m.permSvc.EXPECT().HasAnyCapability(gomock.Any(), actor, []int64{1, 9}, []string{CapManageActivities}).
			Return(manage, nil)
		m.permSvc.EXPECT().HasAnyCapability(gomock.Any(), actor, []int64{1, 9}, []string{CapAddInstance}).
			Return(add, nil)
		m.courseSvc.EXPECT().ModuleEnabled(gomock.Any(), "qbank").Return(enabled, nil)
	}
	testCases := []struct {
		name    string
		mock    func(m testMocks)
		subtype domain.Subtype
		wantCM  course.CourseModule
		wantErr error
	}{
		{
			name:    "子类型不对",
			mock:    func(m testMocks) {},
			subtype: "other",
			wantErr: ErrInvalidSubtype,
		},
		{
			name: "没有管理权限",
			mock: func(m testMocks) {
				canAdd(m, false, true, true)
			},
			subtype: domain.SubtypeStandard,
			wantErr: ErrPermissionDenied,
		},
		{
			name: "插件没有启用",
			mock: func(m testMocks) {
				canAdd(m, true, true, false)
			},
			subtype: domain.SubtypeStandard,
			wantErr: ErrModuleDisabled,
		},
		{
			name: "不能添加题库",
			mock: func(m testMocks) {
				canAdd(m, true, false, true)
			},
			subtype: domain.SubtypeStandard,
			wantErr: ErrModuleDisabled,
		},
		{
			name: "创建普通题库",
			mock: func(m testMocks) {
				canAdd(m, true, true, true)
				m.repo.EXPECT().CreateInstance(gomock.Any(), domain.Instance{
					Course: 3,
					Name:   "Go bank",
					Type:   domain.SubtypeStandard,
				}).Return(int64(11), nil)
				m.courseSvc.EXPECT().AddModule(gomock.Any(), course.ModuleInfo{
					CourseID:        3,
					ModName:         "qbank",
					Instance:        11,
					DownloadContent: true,
				}).Return(course.CourseModule{ID: 8, ContextID: 31}, nil)
				m.repo.EXPECT().CreateDefaultCategories(gomock.Any(), int64(31), "Go bank").Return(nil)
			},
			subtype: domain.SubtypeStandard,
			wantCM:  course.CourseModule{ID: 8, ContextID: 31},
		},
		{
			name: "插件没有安装，回滚实例",
			mock: func(m testMocks) {
				canAdd(m, true, true, true)
				m.repo.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				m.courseSvc.EXPECT().AddModule(gomock.Any(), gomock.Any()).
					Return(course.CourseModule{}, course.ErrUnknownModule)
				m.repo.EXPECT().DeleteInstance(gomock.Any(), int64(11)).Return(nil)
			},
			subtype: domain.SubtypeStandard,
			wantErr: ErrPluginNotInstalled,
		},
		{
			name: "系统题库已经存在",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), int64(3)).Return(c, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), int64(3), domain.SubtypeSystem).
					Return([]int64{7}, nil)
				m.courseSvc.EXPECT().ModInfo(gomock.Any(), int64(3)).Return(course.ModInfo{
					CourseID: 3,
					CMs:      []course.CourseModule{{ID: 7, ModName: "qbank"}},
				}, nil)
			},
			subtype: domain.SubtypeSystem,
			wantCM:  course.CourseModule{ID: 7, ModName: "qbank"},
		},
		{
			// 预览题库总是建在站点课程下，传入的课程没有用
			name: "创建预览题库",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), course.SiteID).Return(site, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), course.SiteID, domain.SubtypePreview).
					Return([]int64{}, nil)
				m.repo.EXPECT().CreateInstance(gomock.Any(), domain.Instance{
					Course: course.SiteID,
					Name:   "Go bank",
					Type:   domain.SubtypePreview,
				}).Return(int64(12), nil)
				m.courseSvc.EXPECT().AddModule(gomock.Any(), course.ModuleInfo{
					CourseID:        course.SiteID,
					ModName:         "qbank",
					Instance:        12,
					ShowDescription: true,
					DownloadContent: true,
				}).Return(course.CourseModule{ID: 15, CourseID: course.SiteID, ContextID: 40}, nil)
				m.repo.EXPECT().CreateDefaultCategories(gomock.Any(), int64(40), "Go bank").Return(nil)
			},
			subtype: domain.SubtypePreview,
			wantCM:  course.CourseModule{ID: 15, CourseID: course.SiteID, ContextID: 40},
		},
		{
			name: "预览题库已经存在",
			mock: func(m testMocks) {
				m.courseSvc.EXPECT().Get(gomock.Any(), course.SiteID).Return(site, nil)
				m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), course.SiteID, domain.SubtypePreview).
					Return([]int64{15}, nil)
				m.courseSvc.EXPECT().ModInfo(gomock.Any(), course.SiteID).Return(course.ModInfo{
					CourseID: course.SiteID,
					CMs: []course.CourseModule{
						{ID: 14, CourseID: course.SiteID, ModName: "forum"},
						{ID: 15, CourseID: course.SiteID, ModName: "qbank", ContextID: 40},
					},
				}, nil)
			},
			subtype: domain.SubtypePreview,
			wantCM:  course.CourseModule{ID: 15, CourseID: course.SiteID, ModName: "qbank", ContextID: 40},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			cm, err := svc.CreateDefaultInstance(context.Background(), actor, 3, "Go bank", tc.subtype)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantCM, cm)
		})
	}
}

func TestService_CourseBanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)

	// 已经有普通题库，不会再创建
	m.repo.EXPECT().FindCMIDsBySubtype(gomock.Any(), int64(3), domain.SubtypeStandard).
		Return([]int64{7}, nil)
	m.repo.EXPECT().List(gomock.Any(), []string{"qbank"}, domain.ListQuery{
		Type:         domain.PluginTypeShared,
		InCourseIDs:  []int64{3},
		Capabilities: ViewCaps,
	}).Return([]domain.BankRecord{bankRecord(7, 3, 30, "a")}, nil)
	m.courseSvc.EXPECT().Contexts(gomock.Any(), []int64{30}).
		Return(map[int64]course.Context{30: {ID: 30, Path: "/1/9/30"}}, nil)
	m.permSvc.EXPECT().FilterByAnyCapability(gomock.Any(), actor, [][]int64{{1, 9, 30}}, ViewCaps).
		Return([]bool{true}, nil)

	banks, err := svc.CourseBanks(context.Background(), actor, 3, true)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "ca - a", banks[0].CourseNameBankName)
}

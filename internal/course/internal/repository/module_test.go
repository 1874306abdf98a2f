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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/repository/cache"
	cachemocks "github.com/ecodeclub/lms/internal/course/internal/repository/cache/mocks"
	"github.com/ecodeclub/lms/internal/course/internal/repository/dao"
	daomocks "github.com/ecodeclub/lms/internal/course/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedModuleRepository_ModInfo(t *testing.T) {
	info := domain.ModInfo{
		CourseID: 5,
		CMs: []domain.CourseModule{
			{ID: 21, CourseID: 5, ModuleID: 3, ModName: "qbank", Instance: 11, SectionNum: 0, SectionID: 8, ContextID: 40},
		},
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (dao.ModuleDAO, cache.ModInfoCache)

		wantInfo domain.ModInfo
		wantErr  error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.ModuleDAO, cache.ModInfoCache) {
				d := daomocks.NewMockModuleDAO(ctrl)
				c := cachemocks.NewMockModInfoCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(5)).Return(info, nil)
				return d, c
			},
			wantInfo: info,
		},
		{
			name: "未命中缓存，查询数据库并回写",
			mock: func(ctrl *gomock.Controller) (dao.ModuleDAO, cache.ModInfoCache) {
				d := daomocks.NewMockModuleDAO(ctrl)
				c := cachemocks.NewMockModInfoCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(5)).Return(domain.ModInfo{}, cache.ErrModInfoNotFound)
				d.EXPECT().FindCourseModules(gomock.Any(), int64(5)).Return([]dao.CourseModuleDetail{
					{
						CourseModule: dao.CourseModule{Id: 21, Course: 5, Module: 3, Instance: 11, Section: 8},
						ModName:      "qbank",
						ContextID:    40,
					},
				}, nil)
				c.EXPECT().Set(gomock.Any(), info).Return(nil)
				return d, c
			},
			wantInfo: info,
		},
		{
			name: "缓存出错，回写失败也返回数据",
			mock: func(ctrl *gomock.Controller) (dao.ModuleDAO, cache.ModInfoCache) {
				d := daomocks.NewMockModuleDAO(ctrl)
				c := cachemocks.NewMockModInfoCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(5)).Return(domain.ModInfo{}, errors.New("redis error"))
				d.EXPECT().FindCourseModules(gomock.Any(), int64(5)).Return([]dao.CourseModuleDetail{
					{
						CourseModule: dao.CourseModule{Id: 21, Course: 5, Module: 3, Instance: 11, Section: 8},
						ModName:      "qbank",
						ContextID:    40,
					},
				}, nil)
				c.EXPECT().Set(gomock.Any(), info).Return(errors.New("redis error"))
				return d, c
			},
			wantInfo: info,
		},
		{
			name: "数据库出错",
			mock: func(ctrl *gomock.Controller) (dao.ModuleDAO, cache.ModInfoCache) {
				d := daomocks.NewMockModuleDAO(ctrl)
				c := cachemocks.NewMockModInfoCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(5)).Return(domain.ModInfo{}, cache.ErrModInfoNotFound)
				d.EXPECT().FindCourseModules(gomock.Any(), int64(5)).Return(nil, errors.New("db error"))
				return d, c
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedModuleRepository(tc.mock(ctrl))
			res, err := repo.ModInfo(context.Background(), 5)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantInfo, res)
		})
	}
}

func TestCachedModuleRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockModuleDAO(ctrl)
	c := cachemocks.NewMockModInfoCache(ctrl)
	d.EXPECT().Create(gomock.Any(), dao.CourseModule{
		Course:          5,
		Module:          3,
		Instance:        11,
		Groupmode:       1,
		Showdescription: true,
		Downloadcontent: true,
	}, 0).Return(dao.CourseModuleDetail{
		CourseModule: dao.CourseModule{Id: 21, Course: 5, Module: 3, Instance: 11, Section: 8,
			Groupmode: 1, Showdescription: true, Downloadcontent: true},
		ModName:   "qbank",
		ContextID: 40,
	}, nil)
	// 新增之后课程活动缓存必须失效
	c.EXPECT().Del(gomock.Any(), int64(5)).Return(nil)

	repo := NewCachedModuleRepository(d, c)
	cm, err := repo.Create(context.Background(), 3, domain.ModuleInfo{
		CourseID:        5,
		ModName:         "qbank",
		Instance:        11,
		GroupMode:       domain.SeparateGroups,
		ShowDescription: true,
		DownloadContent: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.CourseModule{
		ID:              21,
		CourseID:        5,
		ModuleID:        3,
		ModName:         "qbank",
		Instance:        11,
		SectionID:       8,
		GroupMode:       domain.SeparateGroups,
		ShowDescription: true,
		DownloadContent: true,
		ContextID:       40,
	}, cm)
}

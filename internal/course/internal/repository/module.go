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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/repository/cache"
	"github.com/ecodeclub/lms/internal/course/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./module.go -package=repomocks -destination=mocks/module.mock.go ModuleRepository
type ModuleRepository interface {
	EnsureModules(ctx context.Context, names []string) error
	FindModuleByName(ctx context.Context, name string) (domain.Module, error)
	// ModInfo 优先走缓存
	ModInfo(ctx context.Context, courseID int64) (domain.ModInfo, error)
	FindCourseModule(ctx context.Context, cmID int64) (domain.CourseModule, error)
	Create(ctx context.Context, moduleID int64, info domain.ModuleInfo) (domain.CourseModule, error)
}

type CachedModuleRepository struct {
	dao    dao.ModuleDAO
	cache  cache.ModInfoCache
	logger *elog.Component
}

func NewCachedModuleRepository(d dao.ModuleDAO, c cache.ModInfoCache) ModuleRepository {
	return &CachedModuleRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedModuleRepository) EnsureModules(ctx context.Context, names []string) error {
	return r.dao.EnsureModules(ctx, names)
}

func (r *CachedModuleRepository) FindModuleByName(ctx context.Context, name string) (domain.Module, error) {
	m, err := r.dao.FindModuleByName(ctx, name)
	return domain.Module{
		ID:      m.Id,
		Name:    m.Name,
		Visible: m.Visible,
	}, err
}

func (r *CachedModuleRepository) ModInfo(ctx context.Context, courseID int64) (domain.ModInfo, error) {
	info, err := r.cache.Get(ctx, courseID)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, cache.ErrModInfoNotFound) {
		r.logger.Error("查询课程活动缓存失败",
			elog.Int64("courseID", courseID),
			elog.FieldErr(err))
	}
	cms, err := r.dao.FindCourseModules(ctx, courseID)
	if err != nil {
		return domain.ModInfo{}, err
	}
	info = domain.ModInfo{
		CourseID: courseID,
		CMs: slice.Map(cms, func(idx int, src dao.CourseModuleDetail) domain.CourseModule {
			return r.toDomain(src)
		}),
	}
	if err = r.cache.Set(ctx, info); err != nil {
		r.logger.Error("回写课程活动缓存失败",
			elog.Int64("courseID", courseID),
			elog.FieldErr(err))
	}
	return info, nil
}

func (r *CachedModuleRepository) FindCourseModule(ctx context.Context, cmID int64) (domain.CourseModule, error) {
	cm, err := r.dao.FindCourseModule(ctx, cmID)
	return r.toDomain(cm), err
}

func (r *CachedModuleRepository) Create(ctx context.Context, moduleID int64, info domain.ModuleInfo) (domain.CourseModule, error) {
	cm, err := r.dao.Create(ctx, dao.CourseModule{
		Course:              info.CourseID,
		Module:              moduleID,
		Instance:            info.Instance,
		Idnumber:            info.IDNumber,
		Visible:             info.Visible,
		Visibleoncoursepage: info.VisibleOnCoursePage,
		Groupmode:           uint8(info.GroupMode),
		Groupingid:          info.GroupingID,
		Showdescription:     info.ShowDescription,
		Downloadcontent:     info.DownloadContent,
	}, info.SectionNum)
	if err != nil {
		return domain.CourseModule{}, err
	}
	if err = r.cache.Del(ctx, info.CourseID); err != nil {
		r.logger.Error("清除课程活动缓存失败",
			elog.Int64("courseID", info.CourseID),
			elog.FieldErr(err))
	}
	return r.toDomain(cm), nil
}

func (r *CachedModuleRepository) toDomain(cm dao.CourseModuleDetail) domain.CourseModule {
	return domain.CourseModule{
		ID:                  cm.Id,
		CourseID:            cm.Course,
		ModuleID:            cm.Module,
		ModName:             cm.ModName,
		Instance:            cm.Instance,
		SectionID:           cm.Section,
		SectionNum:          cm.SectionNum,
		IDNumber:            cm.Idnumber,
		Visible:             cm.Visible,
		VisibleOnCoursePage: cm.Visibleoncoursepage,
		GroupMode:           domain.GroupMode(cm.Groupmode),
		GroupingID:          cm.Groupingid,
		ShowDescription:     cm.Showdescription,
		DownloadContent:     cm.Downloadcontent,
		DeletionInProgress:  cm.Deletioninprogress,
		ContextID:           cm.ContextID,
	}
}

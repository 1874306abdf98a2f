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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/event"
	"github.com/ecodeclub/lms/internal/course/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrNotFound = repository.ErrNotFound
	// ErrUnknownModule 插件没有注册
	ErrUnknownModule = errors.New("未知的活动模块")
)

//go:generate mockgen -source=./service.go -package=coursemocks -destination=../../mocks/course.mock.go Service
type Service interface {
	Save(ctx context.Context, c domain.Course) (int64, error)
	Get(ctx context.Context, id int64) (domain.Course, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Course, error)

	// ModInfo 课程下所有未删除的活动实例
	ModInfo(ctx context.Context, courseID int64) (domain.ModInfo, error)
	GetCourseModule(ctx context.Context, cmID int64) (domain.CourseModule, error)
	// AddModule 创建活动实例记录和模块上下文，插件自身的实例数据由调用方先写入
	AddModule(ctx context.Context, info domain.ModuleInfo) (domain.CourseModule, error)
	// ModuleEnabled 插件已注册并且在站点中启用
	ModuleEnabled(ctx context.Context, modName string) (bool, error)

	Context(ctx context.Context, id int64) (domain.Context, error)
	// Contexts 不存在的上下文不会出现在结果中
	Contexts(ctx context.Context, ids []int64) (map[int64]domain.Context, error)
	CourseContext(ctx context.Context, courseID int64) (domain.Context, error)
	ModuleContext(ctx context.Context, cmID int64) (domain.Context, error)
}

type service struct {
	repo       repository.CourseRepository
	moduleRepo repository.ModuleRepository
	registry   *PluginRegistry
	producer   event.CourseEventProducer
	logger     *elog.Component
}

func NewService(repo repository.CourseRepository,
	moduleRepo repository.ModuleRepository,
	registry *PluginRegistry,
	producer event.CourseEventProducer) Service {
	return &service{
		repo:       repo,
		moduleRepo: moduleRepo,
		registry:   registry,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, c domain.Course) (int64, error) {
	action := event.ActionUpdated
	if c.ID == 0 {
		action = event.ActionCreated
	}
	id, err := s.repo.Save(ctx, c)
	if err != nil {
		return 0, err
	}
	c.ID = id
	// 消息发送失败不影响课程本身
	if err1 := s.producer.Produce(ctx, event.NewCourseEvent(c, action)); err1 != nil {
		s.logger.Error("发送课程事件失败",
			elog.Int64("courseID", id),
			elog.String("action", action),
			elog.FieldErr(err1))
	}
	return id, nil
}

func (s *service) Get(ctx context.Context, id int64) (domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Course, error) {
	cs, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMap(cs, func(element domain.Course) int64 {
		return element.ID
	}), nil
}

func (s *service) ModInfo(ctx context.Context, courseID int64) (domain.ModInfo, error) {
	return s.moduleRepo.ModInfo(ctx, courseID)
}

func (s *service) GetCourseModule(ctx context.Context, cmID int64) (domain.CourseModule, error) {
	return s.moduleRepo.FindCourseModule(ctx, cmID)
}

func (s *service) AddModule(ctx context.Context, info domain.ModuleInfo) (domain.CourseModule, error) {
	if _, ok := s.registry.Plugin(info.ModName); !ok {
		return domain.CourseModule{}, fmt.Errorf("%w: %s", ErrUnknownModule, info.ModName)
	}
	m, err := s.moduleRepo.FindModuleByName(ctx, info.ModName)
	if err != nil {
		return domain.CourseModule{}, fmt.Errorf("查询活动模块 %s 失败: %w", info.ModName, err)
	}
	return s.moduleRepo.Create(ctx, m.ID, info)
}

func (s *service) ModuleEnabled(ctx context.Context, modName string) (bool, error) {
	if _, ok := s.registry.Plugin(modName); !ok {
		return false, nil
	}
	m, err := s.moduleRepo.FindModuleByName(ctx, modName)
	switch {
	case errors.Is(err, ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return m.Visible, nil
	}
}

func (s *service) Context(ctx context.Context, id int64) (domain.Context, error) {
	return s.repo.FindContext(ctx, id)
}

func (s *service) Contexts(ctx context.Context, ids []int64) (map[int64]domain.Context, error) {
	cs, err := s.repo.FindContexts(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMap(cs, func(element domain.Context) int64 {
		return element.ID
	}), nil
}

func (s *service) CourseContext(ctx context.Context, courseID int64) (domain.Context, error) {
	return s.repo.FindContextByInstance(ctx, domain.ContextCourse, courseID)
}

func (s *service) ModuleContext(ctx context.Context, cmID int64) (domain.Context, error) {
	return s.repo.FindContextByInstance(ctx, domain.ContextModule, cmID)
}

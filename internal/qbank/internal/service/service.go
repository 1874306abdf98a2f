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
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	"github.com/ecodeclub/lms/internal/qbank/internal/repository"
	"github.com/ecodeclub/lms/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidSubtype      = errors.New("无效的题库类型")
	ErrInvalidPluginType   = errors.New("无效的插件分类")
	ErrPermissionDenied    = errors.New("没有权限")
	ErrModuleDisabled      = errors.New("课程中不允许添加题库")
	ErrInvalidContextLevel = errors.New("题库上下文级别不对")
	ErrPluginNotInstalled  = errors.New("题库插件没有安装")
	ErrBankNotFound        = errors.New("题库不存在")
)

const (
	CapManageActivities = "moodle/course:manageactivities"
	CapAddInstance      = "mod/qbank:addinstance"
)

// UseCaps 可以从题库中选题
var UseCaps = []string{"moodle/question:useall", "moodle/question:usemine"}

// ViewCaps 可以在题库列表中看到
var ViewCaps = []string{
	"moodle/question:viewall",
	"moodle/question:viewmine",
	"moodle/question:editall",
	"moodle/question:editmine",
	"moodle/question:managecategory",
}

//go:generate mockgen -source=./service.go -package=qbankmocks -destination=../../mocks/qbank.mock.go Service
type Service interface {
	SharedPluginTypes() []string
	PrivatePluginTypes() []string

	// ListBankInstances 没有 q.Capabilities 中任何一项能力的题库会被过滤掉
	ListBankInstances(ctx context.Context, actor permission.Actor, q domain.ListQuery) ([]domain.Bank, error)
	// RecentlyViewed 顺带清理偏好中已经失效的上下文
	RecentlyViewed(ctx context.Context, actor permission.Actor, excludeCourseID int64) ([]domain.Bank, error)
	AddToRecentlyViewed(ctx context.Context, actor permission.Actor, contextID int64) error

	// SystemBank 没有并且 create 为 false 时返回 ErrBankNotFound
	SystemBank(ctx context.Context, courseID int64, create bool) (course.CourseModule, error)
	// PreviewBank 预览题库总是在站点课程中
	PreviewBank(ctx context.Context, create bool) (course.CourseModule, error)
	// CreateDefaultInstance system 和 preview 已经存在的时候直接返回
	CreateDefaultInstance(ctx context.Context, actor permission.Actor,
		courseID int64, name string, subtype domain.Subtype) (course.CourseModule, error)

	// CourseBanks 课程题库列表页，createDefault 时课程没有普通题库就创建一个
	CourseBanks(ctx context.Context, actor permission.Actor, courseID int64, createDefault bool) ([]domain.Bank, error)
}

type service struct {
	repo      repository.BankRepository
	types     *PluginTypes
	courseSvc course.Service
	permSvc   permission.Service
	prefSvc   user.PreferenceService
	logger    *elog.Component
}

func NewService(repo repository.BankRepository,
	types *PluginTypes,
	courseSvc course.Service,
	permSvc permission.Service,
	prefSvc user.PreferenceService) Service {
	return &service{
		repo:      repo,
		types:     types,
		courseSvc: courseSvc,
		permSvc:   permSvc,
		prefSvc:   prefSvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) SharedPluginTypes() []string {
	return s.types.Shared()
}

func (s *service) PrivatePluginTypes() []string {
	return s.types.Private()
}

func (s *service) ListBankInstances(ctx context.Context, actor permission.Actor, q domain.ListQuery) ([]domain.Bank, error) {
	plugins, err := s.types.Of(q.Type)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.List(ctx, plugins, q)
	if err != nil {
		return nil, err
	}
	records, err = s.filterByCapabilities(ctx, actor, records, q.Capabilities)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, func(idx int, src domain.BankRecord) domain.Bank {
		return domain.FormatBank(src, q.CurrentBankID)
	}), nil
}

func (s *service) filterByCapabilities(ctx context.Context, actor permission.Actor,
	records []domain.BankRecord, caps []string) ([]domain.BankRecord, error) {
	if len(caps) == 0 || len(records) == 0 {
		return records, nil
	}
	ctxIDs := slice.Map(records, func(idx int, src domain.BankRecord) int64 {
		return src.CM.ContextID
	})
	ctxs, err := s.courseSvc.Contexts(ctx, ctxIDs)
	if err != nil {
		return nil, err
	}
	paths := slice.Map(records, func(idx int, src domain.BankRecord) []int64 {
		c, ok := ctxs[src.CM.ContextID]
		if !ok {
			return []int64{src.CM.ContextID}
		}
		return c.PathIDs()
	})
	allowed, err := s.permSvc.FilterByAnyCapability(ctx, actor, paths, caps)
	if err != nil {
		return nil, err
	}
	return slice.FilterMap(records, func(idx int, src domain.BankRecord) (domain.BankRecord, bool) {
		return src, allowed[idx]
	}), nil
}

func (s *service) RecentlyViewed(ctx context.Context, actor permission.Actor, excludeCourseID int64) ([]domain.Bank, error) {
	pref, err := s.prefSvc.GetPreference(ctx, actor.Uid, domain.RecentlyViewedPreference, "")
	if err != nil {
		return nil, err
	}
	stored := domain.ParseRecentlyViewed(pref)
	if len(stored) == 0 {
		return []domain.Bank{}, nil
	}

	invalid := make(map[string]struct{})
	ctxIDs := make([]int64, 0, len(stored))
	for _, raw := range stored {
		id, err1 := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err1 != nil || id <= 0 {
			invalid[raw] = struct{}{}
			continue
		}
		ctxIDs = append(ctxIDs, id)
	}
	ctxs, err := s.courseSvc.Contexts(ctx, ctxIDs)
	if err != nil {
		return nil, err
	}
	cmIDs := make([]int64, 0, len(ctxs))
	for _, id := range ctxIDs {
		c, ok := ctxs[id]
		if !ok {
			continue
		}
		if c.Level != course.ContextModule {
			return nil, fmt.Errorf("%w: 上下文 %d 级别 %d", ErrInvalidContextLevel, c.ID, c.Level)
		}
		cmIDs = append(cmIDs, c.InstanceID)
	}
	records, err := s.repo.FindByCMIDs(ctx, s.types.All(), cmIDs)
	if err != nil {
		return nil, err
	}
	byCM := slice.ToMap(records, func(element domain.BankRecord) int64 {
		return element.CM.ID
	})

	banks := make([]domain.Bank, 0, len(stored))
	for _, raw := range stored {
		if _, ok := invalid[raw]; ok {
			continue
		}
		id, _ := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		c, ok := ctxs[id]
		if !ok {
			invalid[raw] = struct{}{}
			continue
		}
		r, ok := byCM[c.InstanceID]
		if !ok {
			invalid[raw] = struct{}{}
			continue
		}
		if excludeCourseID != 0 && r.CM.CourseID == excludeCourseID {
			continue
		}
		banks = append(banks, domain.FormatBank(r, 0))
	}

	if len(invalid) > 0 {
		s.storeRecentlyViewed(ctx, actor, stored.Without(invalid))
	}
	return banks, nil
}

// storeRecentlyViewed 清理失败不影响读取
func (s *service) storeRecentlyViewed(ctx context.Context, actor permission.Actor, list domain.RecentlyViewed) {
	var err error
	if len(list) == 0 {
		err = s.prefSvc.UnsetPreference(ctx, actor.Uid, domain.RecentlyViewedPreference)
	} else {
		err = s.prefSvc.SetPreference(ctx, actor.Uid, domain.RecentlyViewedPreference, list.String())
	}
	if err != nil {
		s.logger.Error("回写最近打开的题库失败",
			elog.Int64("uid", actor.Uid),
			elog.String("value", list.String()),
			elog.FieldErr(err))
	}
}

func (s *service) AddToRecentlyViewed(ctx context.Context, actor permission.Actor, contextID int64) error {
	c, err := s.courseSvc.Context(ctx, contextID)
	if err != nil {
		return err
	}
	if c.Level != course.ContextModule {
		return fmt.Errorf("%w: 上下文 %d 级别 %d", ErrInvalidContextLevel, c.ID, c.Level)
	}
	pref, err := s.prefSvc.GetPreference(ctx, actor.Uid, domain.RecentlyViewedPreference, "")
	if err != nil {
		return err
	}
	list := domain.ParseRecentlyViewed(pref).Push(contextID)
	return s.prefSvc.SetPreference(ctx, actor.Uid, domain.RecentlyViewedPreference, list.String())
}

func (s *service) SystemBank(ctx context.Context, courseID int64, create bool) (course.CourseModule, error) {
	c, err := s.courseSvc.Get(ctx, courseID)
	if err != nil {
		return course.CourseModule{}, err
	}
	return s.singleton(ctx, c, domain.SubtypeSystem, domain.Str("systembank"), create)
}

func (s *service) PreviewBank(ctx context.Context, create bool) (course.CourseModule, error) {
	return s.previewBank(ctx, domain.Str("previewbank"), create)
}

func (s *service) previewBank(ctx context.Context, name string, create bool) (course.CourseModule, error) {
	site, err := s.courseSvc.Get(ctx, course.SiteID)
	if err != nil {
		return course.CourseModule{}, err
	}
	return s.singleton(ctx, site, domain.SubtypePreview, name, create)
}

// singleton 每个课程最多只有一个的题库
func (s *service) singleton(ctx context.Context, c course.Course,
	subtype domain.Subtype, name string, create bool) (course.CourseModule, error) {
	cm, err := s.findSingleton(ctx, c.ID, subtype)
	if err == nil || !errors.Is(err, ErrBankNotFound) || !create {
		return cm, err
	}
	return s.createInstance(ctx, c, name, subtype)
}

func (s *service) findSingleton(ctx context.Context, courseID int64, subtype domain.Subtype) (course.CourseModule, error) {
	ids, err := s.repo.FindCMIDsBySubtype(ctx, courseID, subtype)
	if err != nil {
		return course.CourseModule{}, err
	}
	if len(ids) == 0 {
		return course.CourseModule{}, ErrBankNotFound
	}
	info, err := s.courseSvc.ModInfo(ctx, courseID)
	if err != nil {
		return course.CourseModule{}, err
	}
	// 正常情况下只会有一个
	for _, cm := range info.InstancesOf(domain.ModName) {
		if cm.ID == ids[0] {
			return cm, nil
		}
	}
	return course.CourseModule{}, ErrBankNotFound
}

func (s *service) CreateDefaultInstance(ctx context.Context, actor permission.Actor,
	courseID int64, name string, subtype domain.Subtype) (course.CourseModule, error) {
	if !subtype.Valid() {
		return course.CourseModule{}, fmt.Errorf("%w: %s", ErrInvalidSubtype, subtype)
	}
	if subtype == domain.SubtypePreview {
		return s.previewBank(ctx, name, true)
	}
	c, err := s.courseSvc.Get(ctx, courseID)
	if err != nil {
		return course.CourseModule{}, err
	}
	if subtype == domain.SubtypeSystem {
		return s.singleton(ctx, c, subtype, name, true)
	}
	err = s.checkCanAddBank(ctx, actor, c)
	if err != nil {
		return course.CourseModule{}, err
	}
	return s.createInstance(ctx, c, name, subtype)
}

// checkCanAddBank 需要管理课程活动的能力，并且课程中允许添加题库
func (s *service) checkCanAddBank(ctx context.Context, actor permission.Actor, c course.Course) error {
	cctx, err := s.courseSvc.CourseContext(ctx, c.ID)
	if err != nil {
		return err
	}
	path := cctx.PathIDs()
	var (
		eg        errgroup.Group
		canManage bool
		canAdd    bool
		enabled   bool
	)
	eg.Go(func() error {
		var err error
		canManage, err = s.permSvc.HasAnyCapability(ctx, actor, path, []string{CapManageActivities})
		return err
	})
	eg.Go(func() error {
		var err error
		canAdd, err = s.permSvc.HasAnyCapability(ctx, actor, path, []string{CapAddInstance})
		return err
	})
	eg.Go(func() error {
		var err error
		enabled, err = s.courseSvc.ModuleEnabled(ctx, domain.ModName)
		return err
	})
	if err = eg.Wait(); err != nil {
		return err
	}
	if !canManage {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, CapManageActivities)
	}
	if !enabled || !canAdd {
		return ErrModuleDisabled
	}
	return nil
}

func (s *service) createInstance(ctx context.Context, c course.Course,
	name string, subtype domain.Subtype) (course.CourseModule, error) {
	ins := domain.Instance{
		Course: c.ID,
		Name:   name,
		Type:   subtype,
	}
	// 系统题库不是用户直接创建的，描述由系统设置
	if subtype == domain.SubtypeSystem {
		ins.Intro = domain.Str("systembankdescription")
		ins.IntroFormat = domain.FormatHTML
	}
	id, err := s.repo.CreateInstance(ctx, ins)
	if err != nil {
		return course.CourseModule{}, err
	}
	cm, err := s.courseSvc.AddModule(ctx, course.ModuleInfo{
		CourseID:            c.ID,
		ModName:             domain.ModName,
		Instance:            id,
		SectionNum:          0,
		Visible:             false,
		VisibleOnCoursePage: false,
		GroupMode:           c.GroupMode,
		GroupingID:          c.DefaultGroupingID,
		ShowDescription:     subtype != domain.SubtypeStandard,
		DownloadContent:     true,
	})
	if err != nil {
		if err1 := s.repo.DeleteInstance(ctx, id); err1 != nil {
			s.logger.Error("回滚题库实例失败",
				elog.Int64("instance", id),
				elog.FieldErr(err1))
		}
		if errors.Is(err, course.ErrUnknownModule) {
			return course.CourseModule{}, fmt.Errorf("%w: %w", ErrPluginNotInstalled, err)
		}
		return course.CourseModule{}, err
	}
	if err = s.repo.CreateDefaultCategories(ctx, cm.ContextID, name); err != nil {
		s.logger.Error("创建题库默认分类失败",
			elog.Int64("cmID", cm.ID),
			elog.Int64("contextID", cm.ContextID),
			elog.FieldErr(err))
	}
	return cm, nil
}

func (s *service) CourseBanks(ctx context.Context, actor permission.Actor,
	courseID int64, createDefault bool) ([]domain.Bank, error) {
	if createDefault {
		err := s.ensureDefaultBank(ctx, actor, courseID)
		if err != nil {
			return nil, err
		}
	}
	return s.ListBankInstances(ctx, actor, domain.ListQuery{
		Type:         domain.PluginTypeShared,
		InCourseIDs:  []int64{courseID},
		Capabilities: ViewCaps,
	})
}

func (s *service) ensureDefaultBank(ctx context.Context, actor permission.Actor, courseID int64) error {
	ids, err := s.repo.FindCMIDsBySubtype(ctx, courseID, domain.SubtypeStandard)
	if err != nil || len(ids) > 0 {
		return err
	}
	c, err := s.courseSvc.Get(ctx, courseID)
	if err != nil {
		return err
	}
	_, err = s.CreateDefaultInstance(ctx, actor, courseID, domain.DefaultBankName(c.FullName), domain.SubtypeStandard)
	return err
}

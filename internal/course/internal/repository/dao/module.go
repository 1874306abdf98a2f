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

package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type ModuleDAO interface {
	// EnsureModules 保证已注册的插件在 modules 表中都有记录
	EnsureModules(ctx context.Context, names []string) error
	FindModuleByName(ctx context.Context, name string) (Module, error)
	FindCourseModules(ctx context.Context, courseID int64) ([]CourseModuleDetail, error)
	FindCourseModule(ctx context.Context, cmID int64) (CourseModuleDetail, error)
	Create(ctx context.Context, cm CourseModule, sectionNum int) (CourseModuleDetail, error)
}

type GORMModuleDAO struct {
	db *egorm.Component
}

func NewGORMModuleDAO(db *egorm.Component) ModuleDAO {
	return &GORMModuleDAO{db: db}
}

func (g *GORMModuleDAO) EnsureModules(ctx context.Context, names []string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			m := Module{Name: name}
			err := tx.Where("name = ?", name).
				Attrs(Module{Visible: true, Ctime: now, Utime: now}).
				FirstOrCreate(&m).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GORMModuleDAO) FindModuleByName(ctx context.Context, name string) (Module, error) {
	var m Module
	err := g.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	return m, err
}

func (g *GORMModuleDAO) detailQuery(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Table("course_modules AS cm").
		Select("cm.*, m.name AS mod_name, cs.section AS section_num, ctx.id AS context_id").
		Joins("JOIN modules m ON m.id = cm.module").
		Joins("LEFT JOIN course_sections cs ON cs.id = cm.section").
		Joins("LEFT JOIN contexts ctx ON ctx.instanceid = cm.id AND ctx.contextlevel = ?", ContextLevelModule)
}

func (g *GORMModuleDAO) FindCourseModules(ctx context.Context, courseID int64) ([]CourseModuleDetail, error) {
	var res []CourseModuleDetail
	err := g.detailQuery(ctx).
		Where("cm.course = ? AND cm.deletioninprogress = ?", courseID, false).
		Order("cm.id ASC").
		Scan(&res).Error
	return res, err
}

func (g *GORMModuleDAO) FindCourseModule(ctx context.Context, cmID int64) (CourseModuleDetail, error) {
	var res []CourseModuleDetail
	err := g.detailQuery(ctx).Where("cm.id = ?", cmID).Limit(1).Scan(&res).Error
	if err != nil {
		return CourseModuleDetail{}, err
	}
	if len(res) == 0 {
		return CourseModuleDetail{}, ErrRecordNotFound
	}
	return res[0], nil
}

func (g *GORMModuleDAO) Create(ctx context.Context, cm CourseModule, sectionNum int) (CourseModuleDetail, error) {
	now := time.Now().UnixMilli()
	var res CourseModuleDetail
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m Module
		if err := tx.Where("id = ?", cm.Module).First(&m).Error; err != nil {
			return err
		}
		section := CourseSection{Course: cm.Course, Section: sectionNum}
		err := tx.Where("course = ? AND section = ?", cm.Course, sectionNum).
			Attrs(CourseSection{Ctime: now, Utime: now}).
			FirstOrCreate(&section).Error
		if err != nil {
			return err
		}
		var parent Context
		err = tx.Where("contextlevel = ? AND instanceid = ?", ContextLevelCourse, cm.Course).
			First(&parent).Error
		if err != nil {
			return fmt.Errorf("课程 %d 缺少上下文: %w", cm.Course, err)
		}
		cm.Section = section.Id
		cm.Ctime, cm.Utime = now, now
		if err = tx.Create(&cm).Error; err != nil {
			return err
		}
		mctx := Context{
			Contextlevel: ContextLevelModule,
			Instanceid:   cm.Id,
			Depth:        parent.Depth + 1,
		}
		if err = tx.Create(&mctx).Error; err != nil {
			return err
		}
		mctx.Path = fmt.Sprintf("%s/%d", parent.Path, mctx.Id)
		if err = tx.Model(&mctx).Update("path", mctx.Path).Error; err != nil {
			return err
		}
		res = CourseModuleDetail{
			CourseModule: cm,
			ModName:      m.Name,
			SectionNum:   sectionNum,
			ContextID:    mctx.Id,
		}
		return nil
	})
	return res, err
}

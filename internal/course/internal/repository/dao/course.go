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

type CourseDAO interface {
	// Save 新建课程时同时创建课程上下文与 0 号章节
	Save(ctx context.Context, c Course) (int64, error)
	FindByID(ctx context.Context, id int64) (Course, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Course, error)
	FindContext(ctx context.Context, id int64) (Context, error)
	FindContexts(ctx context.Context, ids []int64) ([]Context, error)
	FindContextByInstance(ctx context.Context, level uint8, instanceID int64) (Context, error)
}

type GORMCourseDAO struct {
	db *egorm.Component
}

func NewGORMCourseDAO(db *egorm.Component) CourseDAO {
	return &GORMCourseDAO{db: db}
}

func (g *GORMCourseDAO) Save(ctx context.Context, c Course) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id > 0 {
		err := g.db.WithContext(ctx).Model(&Course{}).
			Where("id = ?", c.Id).
			Updates(map[string]any{
				"category":          c.Category,
				"shortname":         c.Shortname,
				"fullname":          c.Fullname,
				"groupmode":         c.Groupmode,
				"defaultgroupingid": c.Defaultgroupingid,
				"utime":             c.Utime,
			}).Error
		return c.Id, err
	}
	c.Ctime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		cctx := Context{
			Contextlevel: ContextLevelCourse,
			Instanceid:   c.Id,
			Depth:        2,
		}
		if err := tx.Create(&cctx).Error; err != nil {
			return err
		}
		// path 依赖自增 ID，只能回填
		err := tx.Model(&cctx).Update("path", fmt.Sprintf("/%d/%d", SystemContextID, cctx.Id)).Error
		if err != nil {
			return err
		}
		return tx.Create(&CourseSection{
			Course: c.Id,
			Ctime:  now,
			Utime:  now,
		}).Error
	})
	return c.Id, err
}

func (g *GORMCourseDAO) FindByID(ctx context.Context, id int64) (Course, error) {
	var c Course
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMCourseDAO) FindByIDs(ctx context.Context, ids []int64) ([]Course, error) {
	var res []Course
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMCourseDAO) FindContext(ctx context.Context, id int64) (Context, error) {
	var c Context
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMCourseDAO) FindContexts(ctx context.Context, ids []int64) ([]Context, error) {
	var res []Context
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMCourseDAO) FindContextByInstance(ctx context.Context, level uint8, instanceID int64) (Context, error) {
	var c Context
	err := g.db.WithContext(ctx).
		Where("contextlevel = ? AND instanceid = ?", level, instanceID).
		First(&c).Error
	return c, err
}

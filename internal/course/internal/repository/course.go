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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/repository/dao"
)

var ErrNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./course.go -package=repomocks -destination=mocks/course.mock.go CourseRepository
type CourseRepository interface {
	Save(ctx context.Context, c domain.Course) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Course, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Course, error)
	FindContext(ctx context.Context, id int64) (domain.Context, error)
	FindContexts(ctx context.Context, ids []int64) ([]domain.Context, error)
	FindContextByInstance(ctx context.Context, level domain.ContextLevel, instanceID int64) (domain.Context, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepository(d dao.CourseDAO) CourseRepository {
	return &courseRepository{dao: d}
}

func (r *courseRepository) Save(ctx context.Context, c domain.Course) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *courseRepository) FindByID(ctx context.Context, id int64) (domain.Course, error) {
	c, err := r.dao.FindByID(ctx, id)
	return r.toDomain(c), err
}

func (r *courseRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Course, error) {
	cs, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return r.toDomain(src)
	}), err
}

func (r *courseRepository) FindContext(ctx context.Context, id int64) (domain.Context, error) {
	c, err := r.dao.FindContext(ctx, id)
	return toContextDomain(c), err
}

func (r *courseRepository) FindContexts(ctx context.Context, ids []int64) ([]domain.Context, error) {
	cs, err := r.dao.FindContexts(ctx, ids)
	return slice.Map(cs, func(idx int, src dao.Context) domain.Context {
		return toContextDomain(src)
	}), err
}

func (r *courseRepository) FindContextByInstance(ctx context.Context, level domain.ContextLevel, instanceID int64) (domain.Context, error) {
	c, err := r.dao.FindContextByInstance(ctx, level.ToUint8(), instanceID)
	return toContextDomain(c), err
}

func (r *courseRepository) toEntity(c domain.Course) dao.Course {
	return dao.Course{
		Id:                c.ID,
		Category:          c.Category,
		Shortname:         c.ShortName,
		Fullname:          c.FullName,
		Groupmode:         uint8(c.GroupMode),
		Defaultgroupingid: c.DefaultGroupingID,
	}
}

func (r *courseRepository) toDomain(c dao.Course) domain.Course {
	return domain.Course{
		ID:                c.Id,
		Category:          c.Category,
		ShortName:         c.Shortname,
		FullName:          c.Fullname,
		GroupMode:         domain.GroupMode(c.Groupmode),
		DefaultGroupingID: c.Defaultgroupingid,
		Utime:             c.Utime,
	}
}

func toContextDomain(c dao.Context) domain.Context {
	return domain.Context{
		ID:         c.Id,
		Level:      domain.ContextLevel(c.Contextlevel),
		InstanceID: c.Instanceid,
		Path:       c.Path,
		Depth:      c.Depth,
	}
}

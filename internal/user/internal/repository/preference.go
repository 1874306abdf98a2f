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

	"github.com/ecodeclub/lms/internal/user/internal/domain"
	"github.com/ecodeclub/lms/internal/user/internal/repository/cache"
	"github.com/ecodeclub/lms/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrPreferenceNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./preference.go -package=repomocks -destination=mocks/preference.mock.go PreferenceRepository
type PreferenceRepository interface {
	Get(ctx context.Context, uid int64, name string) (domain.Preference, error)
	Save(ctx context.Context, p domain.Preference) error
	Delete(ctx context.Context, uid int64, name string) error
}

// CachedPreferenceRepository 使用了缓存的 repository 实现
type CachedPreferenceRepository struct {
	dao    dao.PreferenceDAO
	cache  cache.PreferenceCache
	logger *elog.Component
}

func NewCachedPreferenceRepository(d dao.PreferenceDAO,
	c cache.PreferenceCache) PreferenceRepository {
	return &CachedPreferenceRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedPreferenceRepository) Get(ctx context.Context, uid int64, name string) (domain.Preference, error) {
	val, err := r.cache.Get(ctx, uid, name)
	if err == nil {
		return domain.Preference{Uid: uid, Name: name, Value: val}, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		r.logger.Error("查询偏好缓存失败",
			elog.Int64("uid", uid),
			elog.String("name", name),
			elog.FieldErr(err))
	}
	p, err := r.dao.Get(ctx, uid, name)
	if err != nil {
		return domain.Preference{}, err
	}
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, uid, name, p.Value)
	return r.toDomain(p), nil
}

func (r *CachedPreferenceRepository) Save(ctx context.Context, p domain.Preference) error {
	err := r.dao.Upsert(ctx, dao.UserPreference{
		Uid:   p.Uid,
		Name:  p.Name,
		Value: p.Value,
	})
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, p.Uid, p.Name)
}

func (r *CachedPreferenceRepository) Delete(ctx context.Context, uid int64, name string) error {
	err := r.dao.Delete(ctx, uid, name)
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, uid, name)
}

func (r *CachedPreferenceRepository) toDomain(p dao.UserPreference) domain.Preference {
	return domain.Preference{
		Uid:   p.Uid,
		Name:  p.Name,
		Value: p.Value,
	}
}

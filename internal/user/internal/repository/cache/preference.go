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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrKeyNotExist = errors.New("偏好缓存不存在")

//go:generate mockgen -source=./preference.go -package=cachemocks -destination=mocks/preference.mock.go PreferenceCache
type PreferenceCache interface {
	Get(ctx context.Context, uid int64, name string) (string, error)
	Set(ctx context.Context, uid int64, name, value string) error
	Delete(ctx context.Context, uid int64, name string) error
}

type PreferenceECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewPreferenceECache 注意缓存前缀
func NewPreferenceECache(c ecache.Cache) PreferenceCache {
	return &PreferenceECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *PreferenceECache) Get(ctx context.Context, uid int64, name string) (string, error) {
	val := c.cache.Get(ctx, c.key(uid, name))
	if val.KeyNotFound() {
		return "", ErrKeyNotExist
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "查询偏好缓存失败")
	}
	return val.String()
}

func (c *PreferenceECache) Set(ctx context.Context, uid int64, name, value string) error {
	return c.cache.Set(ctx, c.key(uid, name), value, c.expiration)
}

func (c *PreferenceECache) Delete(ctx context.Context, uid int64, name string) error {
	_, err := c.cache.Delete(ctx, c.key(uid, name))
	return err
}

func (c *PreferenceECache) key(uid int64, name string) string {
	return fmt.Sprintf("preference:%d:%s", uid, name)
}

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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/pkg/errors"
)

const (
	modInfoExpiration = 24 * time.Hour
)

var (
	ErrModInfoNotFound = errors.New("课程活动信息没找到")
)

//go:generate mockgen -source=./modinfo.go -package=cachemocks -destination=mocks/modinfo.mock.go ModInfoCache
type ModInfoCache interface {
	Get(ctx context.Context, courseID int64) (domain.ModInfo, error)
	Set(ctx context.Context, info domain.ModInfo) error
	Del(ctx context.Context, courseID int64) error
}

type modInfoCache struct {
	ec ecache.Cache
}

func NewModInfoCache(ec ecache.Cache) ModInfoCache {
	return &modInfoCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "course:",
		},
	}
}

func (c *modInfoCache) Get(ctx context.Context, courseID int64) (domain.ModInfo, error) {
	val := c.ec.Get(ctx, c.key(courseID))
	if val.KeyNotFound() {
		return domain.ModInfo{}, ErrModInfoNotFound
	}
	if val.Err != nil {
		return domain.ModInfo{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var info domain.ModInfo
	str, err := val.String()
	if err != nil {
		return domain.ModInfo{}, errors.Wrap(err, "缓存数据类型不对")
	}
	err = json.Unmarshal([]byte(str), &info)
	if err != nil {
		return domain.ModInfo{}, errors.Wrap(err, "反序列化课程活动信息失败")
	}
	return info, nil
}

func (c *modInfoCache) Set(ctx context.Context, info domain.ModInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "序列化课程活动信息失败")
	}
	return c.ec.Set(ctx, c.key(info.CourseID), string(data), modInfoExpiration)
}

func (c *modInfoCache) Del(ctx context.Context, courseID int64) error {
	_, err := c.ec.Delete(ctx, c.key(courseID))
	return err
}

func (c *modInfoCache) key(courseID int64) string {
	return fmt.Sprintf("modinfo:%d", courseID)
}

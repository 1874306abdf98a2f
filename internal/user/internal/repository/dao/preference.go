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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./preference.go -package=daomocks -destination=mocks/preference.mock.go PreferenceDAO
type PreferenceDAO interface {
	Get(ctx context.Context, uid int64, name string) (UserPreference, error)
	// Upsert 按照 uid + name 覆盖
	Upsert(ctx context.Context, p UserPreference) error
	Delete(ctx context.Context, uid int64, name string) error
}

type GORMPreferenceDAO struct {
	db *egorm.Component
}

func NewGORMPreferenceDAO(db *egorm.Component) PreferenceDAO {
	return &GORMPreferenceDAO{
		db: db,
	}
}

func (d *GORMPreferenceDAO) Get(ctx context.Context, uid int64, name string) (UserPreference, error) {
	var p UserPreference
	err := d.db.WithContext(ctx).Where("uid = ? AND name = ?", uid, name).First(&p).Error
	return p, err
}

func (d *GORMPreferenceDAO) Upsert(ctx context.Context, p UserPreference) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"value", "utime"}),
	}).Create(&p).Error
}

func (d *GORMPreferenceDAO) Delete(ctx context.Context, uid int64, name string) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND name = ?", uid, name).
		Delete(&UserPreference{}).Error
}

type UserPreference struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"not null;uniqueIndex:uniq_uid_name"`
	Name  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_uid_name"`
	Value string `gorm:"type:varchar(1333);not null"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

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
)

type RoleAssignmentDAO interface {
	Create(ctx context.Context, ras []RoleAssignment) error
	Delete(ctx context.Context, ra RoleAssignment) error
	FindByContexts(ctx context.Context, uid int64, contextIDs []int64) ([]RoleAssignment, error)
}

type gormRoleAssignmentDAO struct {
	db *egorm.Component
}

func NewRoleAssignmentGORMDAO(db *egorm.Component) RoleAssignmentDAO {
	return &gormRoleAssignmentDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&RoleAssignment{})
}

func (g *gormRoleAssignmentDAO) Create(ctx context.Context, ras []RoleAssignment) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ra := range ras {
			if err := tx.Where(RoleAssignment{Uid: ra.Uid, Role: ra.Role, Contextid: ra.Contextid}).
				Attrs(RoleAssignment{Ctime: now, Utime: now}).FirstOrCreate(&ra).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *gormRoleAssignmentDAO) Delete(ctx context.Context, ra RoleAssignment) error {
	return g.db.WithContext(ctx).
		Where("uid = ? AND role = ? AND contextid = ?", ra.Uid, ra.Role, ra.Contextid).
		Delete(&RoleAssignment{}).Error
}

func (g *gormRoleAssignmentDAO) FindByContexts(ctx context.Context, uid int64, contextIDs []int64) ([]RoleAssignment, error) {
	var res []RoleAssignment
	if len(contextIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("uid = ? AND contextid IN ?", uid, contextIDs).
		Find(&res).Error
	return res, err
}

type RoleAssignment struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:角色分配自增ID"`
	Uid       int64  `gorm:"not null;uniqueIndex:uniq_uid_role_ctx;comment:用户ID"`
	Role      string `gorm:"type:varchar(100);not null;uniqueIndex:uniq_uid_role_ctx;comment:角色, editingteacher"`
	Contextid int64  `gorm:"not null;uniqueIndex:uniq_uid_role_ctx;index;comment:上下文ID"`
	Ctime     int64
	Utime     int64
}

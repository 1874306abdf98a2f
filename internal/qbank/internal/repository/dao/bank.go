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

//go:generate mockgen -source=./bank.go -package=daomocks -destination=mocks/bank.mock.go BankDAO
type BankDAO interface {
	ListBanks(ctx context.Context, q BankQuery) ([]BankRow, error)
	// FindCMIDsBySubtype 课程中指定子类型的题库活动 ID
	FindCMIDsBySubtype(ctx context.Context, courseID int64, subtype string) ([]int64, error)
	CreateInstance(ctx context.Context, q QBank) (int64, error)
	DeleteInstance(ctx context.Context, id int64) error
	// CreateDefaultCategories 为新的题库上下文创建顶级分类和默认分类
	CreateDefaultCategories(ctx context.Context, contextID int64, bankName string) error
}

type GORMBankDAO struct {
	db *egorm.Component
}

func NewGORMBankDAO(db *egorm.Component) BankDAO {
	return &GORMBankDAO{db: db}
}

func (g *GORMBankDAO) ListBanks(ctx context.Context, q BankQuery) ([]BankRow, error) {
	res := make([]BankRow, 0)
	if len(q.Plugins) == 0 {
		return res, nil
	}
	db := g.db.WithContext(ctx)
	err := newBankQueryBuilder(q, db.Dialector.Name()).Build(db).Scan(&res).Error
	return res, err
}

func (g *GORMBankDAO) FindCMIDsBySubtype(ctx context.Context, courseID int64, subtype string) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Table("course_modules AS cm").
		Joins("JOIN modules m ON m.id = cm.module").
		Joins("JOIN qbank q ON q.id = cm.instance AND m.name = ?", "qbank").
		Where("cm.course = ? AND q.type = ? AND cm.deletioninprogress = ?", courseID, subtype, false).
		Order("cm.id ASC").
		Pluck("cm.id", &ids).Error
	return ids, err
}

func (g *GORMBankDAO) CreateInstance(ctx context.Context, q QBank) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime, q.Utime = now, now
	err := g.db.WithContext(ctx).Create(&q).Error
	return q.Id, err
}

func (g *GORMBankDAO) DeleteInstance(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&QBank{}).Error
}

func (g *GORMBankDAO) CreateDefaultCategories(ctx context.Context, contextID int64, bankName string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		top := QuestionCategory{
			Name:      "top",
			Contextid: contextID,
			Sortorder: 0,
			Ctime:     now,
			Utime:     now,
		}
		if err := tx.Create(&top).Error; err != nil {
			return err
		}
		return tx.Create(&QuestionCategory{
			Name:      fmt.Sprintf("Default for %s", bankName),
			Contextid: contextID,
			Parent:    top.Id,
			Sortorder: 999,
			Ctime:     now,
			Utime:     now,
		}).Error
	})
}

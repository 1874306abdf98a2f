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
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	"github.com/ecodeclub/lms/internal/qbank/internal/repository/dao"
)

//go:generate mockgen -source=./bank.go -package=repomocks -destination=mocks/bank.mock.go BankRepository
type BankRepository interface {
	// List plugins 是需要联表的插件
	List(ctx context.Context, plugins []string, q domain.ListQuery) ([]domain.BankRecord, error)
	// FindByCMIDs 结果顺序与 cmIDs 无关，已删除的活动不会返回
	FindByCMIDs(ctx context.Context, plugins []string, cmIDs []int64) ([]domain.BankRecord, error)
	FindCMIDsBySubtype(ctx context.Context, courseID int64, subtype domain.Subtype) ([]int64, error)
	CreateInstance(ctx context.Context, ins domain.Instance) (int64, error)
	DeleteInstance(ctx context.Context, id int64) error
	CreateDefaultCategories(ctx context.Context, contextID int64, bankName string) error
}

type bankRepository struct {
	dao dao.BankDAO
}

func NewBankRepository(d dao.BankDAO) BankRepository {
	return &bankRepository{dao: d}
}

func (r *bankRepository) List(ctx context.Context, plugins []string, q domain.ListQuery) ([]domain.BankRecord, error) {
	rows, err := r.dao.ListBanks(ctx, dao.BankQuery{
		Plugins:        plugins,
		InCourseIDs:    q.InCourseIDs,
		NotInCourseIDs: q.NotInCourseIDs,
		WithCategories: q.WithCategories,
		CurrentBankID:  q.CurrentBankID,
	})
	return r.toDomain(rows), err
}

func (r *bankRepository) FindByCMIDs(ctx context.Context, plugins []string, cmIDs []int64) ([]domain.BankRecord, error) {
	if len(cmIDs) == 0 {
		return []domain.BankRecord{}, nil
	}
	rows, err := r.dao.ListBanks(ctx, dao.BankQuery{
		Plugins: plugins,
		CMIDs:   cmIDs,
	})
	return r.toDomain(rows), err
}

func (r *bankRepository) FindCMIDsBySubtype(ctx context.Context, courseID int64, subtype domain.Subtype) ([]int64, error) {
	return r.dao.FindCMIDsBySubtype(ctx, courseID, subtype.String())
}

func (r *bankRepository) CreateInstance(ctx context.Context, ins domain.Instance) (int64, error) {
	return r.dao.CreateInstance(ctx, dao.QBank{
		Course:      ins.Course,
		Name:        ins.Name,
		Intro:       ins.Intro,
		Introformat: uint8(ins.IntroFormat),
		Type:        ins.Type.String(),
	})
}

func (r *bankRepository) DeleteInstance(ctx context.Context, id int64) error {
	return r.dao.DeleteInstance(ctx, id)
}

func (r *bankRepository) CreateDefaultCategories(ctx context.Context, contextID int64, bankName string) error {
	return r.dao.CreateDefaultCategories(ctx, contextID, bankName)
}

func (r *bankRepository) toDomain(rows []dao.BankRow) []domain.BankRecord {
	return slice.Map(rows, func(idx int, src dao.BankRow) domain.BankRecord {
		return domain.BankRecord{
			CM: course.CourseModule{
				ID:                  src.Id,
				CourseID:            src.Course,
				ModuleID:            src.Module,
				ModName:             src.ModName,
				Instance:            src.Instance,
				SectionID:           src.Section,
				SectionNum:          src.SectionNum,
				IDNumber:            src.Idnumber,
				Visible:             src.Visible,
				VisibleOnCoursePage: src.Visibleoncoursepage,
				GroupMode:           course.GroupMode(src.Groupmode),
				GroupingID:          src.Groupingid,
				ShowDescription:     src.Showdescription,
				DownloadContent:     src.Downloadcontent,
				DeletionInProgress:  src.Deletioninprogress,
				ContextID:           src.ContextID,
			},
			Name:            src.Name,
			CourseShortName: src.CourseShortName,
			Cats:            src.Cats,
		}
	})
}

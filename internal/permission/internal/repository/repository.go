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
	"github.com/ecodeclub/lms/internal/permission/internal/domain"
	"github.com/ecodeclub/lms/internal/permission/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/permission.mock.go RoleAssignmentRepository
type RoleAssignmentRepository interface {
	Create(ctx context.Context, ras []domain.RoleAssignment) error
	Delete(ctx context.Context, ra domain.RoleAssignment) error
	FindByContexts(ctx context.Context, uid int64, contextIDs []int64) ([]domain.RoleAssignment, error)
}

type roleAssignmentRepository struct {
	dao dao.RoleAssignmentDAO
}

func NewRoleAssignmentRepository(dao dao.RoleAssignmentDAO) RoleAssignmentRepository {
	return &roleAssignmentRepository{dao: dao}
}

func (r *roleAssignmentRepository) Create(ctx context.Context, ras []domain.RoleAssignment) error {
	entities := slice.Map(ras, func(idx int, src domain.RoleAssignment) dao.RoleAssignment {
		return r.toEntity(src)
	})
	return r.dao.Create(ctx, entities)
}

func (r *roleAssignmentRepository) Delete(ctx context.Context, ra domain.RoleAssignment) error {
	return r.dao.Delete(ctx, r.toEntity(ra))
}

func (r *roleAssignmentRepository) FindByContexts(ctx context.Context, uid int64, contextIDs []int64) ([]domain.RoleAssignment, error) {
	ras, err := r.dao.FindByContexts(ctx, uid, contextIDs)
	if err != nil {
		return nil, err
	}
	return slice.Map(ras, func(idx int, src dao.RoleAssignment) domain.RoleAssignment {
		return r.toDomain(src)
	}), nil
}

func (r *roleAssignmentRepository) toEntity(ra domain.RoleAssignment) dao.RoleAssignment {
	return dao.RoleAssignment{
		Uid:       ra.Uid,
		Role:      ra.Role,
		Contextid: ra.ContextID,
	}
}

func (r *roleAssignmentRepository) toDomain(ra dao.RoleAssignment) domain.RoleAssignment {
	return domain.RoleAssignment{
		Uid:       ra.Uid,
		Role:      ra.Role,
		ContextID: ra.Contextid,
	}
}

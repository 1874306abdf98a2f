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

package service

import (
	"context"

	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/lms/internal/permission/internal/domain"
	"github.com/ecodeclub/lms/internal/permission/internal/repository"
)

//go:generate mockgen -source=./service.go -package=permissionmocks -destination=../../mocks/permission.mock.go Service
type Service interface {
	Assign(ctx context.Context, ras []domain.RoleAssignment) error
	Unassign(ctx context.Context, ra domain.RoleAssignment) error
	// HasAnyCapability contextPath 是从根到目标上下文的 ID，任一层级上的角色都生效
	// capabilities 为空表示不做限制
	HasAnyCapability(ctx context.Context, actor domain.Actor, contextPath []int64, capabilities []string) (bool, error)
	// FilterByAnyCapability 批量版本，只查询一次角色分配，返回结果与 contextPaths 一一对应
	FilterByAnyCapability(ctx context.Context, actor domain.Actor, contextPaths [][]int64, capabilities []string) ([]bool, error)
	IsSiteAdmin(actor domain.Actor) bool
}

type permissionService struct {
	repo   repository.RoleAssignmentRepository
	policy *Policy
}

func NewPermissionService(repo repository.RoleAssignmentRepository, policy *Policy) Service {
	return &permissionService{repo: repo, policy: policy}
}

func (s *permissionService) Assign(ctx context.Context, ras []domain.RoleAssignment) error {
	return s.repo.Create(ctx, ras)
}

func (s *permissionService) Unassign(ctx context.Context, ra domain.RoleAssignment) error {
	return s.repo.Delete(ctx, ra)
}

func (s *permissionService) IsSiteAdmin(actor domain.Actor) bool {
	return s.policy.IsAdmin(actor.Uid)
}

func (s *permissionService) HasAnyCapability(ctx context.Context, actor domain.Actor,
	contextPath []int64, capabilities []string) (bool, error) {
	res, err := s.FilterByAnyCapability(ctx, actor, [][]int64{contextPath}, capabilities)
	if err != nil {
		return false, err
	}
	return res[0], nil
}

func (s *permissionService) FilterByAnyCapability(ctx context.Context, actor domain.Actor,
	contextPaths [][]int64, capabilities []string) ([]bool, error) {
	res := make([]bool, len(contextPaths))
	if len(capabilities) == 0 || s.policy.IsAdmin(actor.Uid) {
		for i := range res {
			res[i] = true
		}
		return res, nil
	}
	ids := set.NewMapSet[int64](len(contextPaths))
	for _, path := range contextPaths {
		for _, id := range path {
			ids.Add(id)
		}
	}
	ras, err := s.repo.FindByContexts(ctx, actor.Uid, ids.Keys())
	if err != nil {
		return nil, err
	}
	rolesByCtx := make(map[int64][]string, len(ras))
	for _, ra := range ras {
		rolesByCtx[ra.ContextID] = append(rolesByCtx[ra.ContextID], ra.Role)
	}
	for i, path := range contextPaths {
		roles := make([]string, 0, len(path))
		for _, id := range path {
			roles = append(roles, rolesByCtx[id]...)
		}
		res[i] = s.policy.Any(roles, capabilities)
	}
	return res, nil
}

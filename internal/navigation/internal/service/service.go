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

	"github.com/ecodeclub/lms/internal/navigation/internal/domain"
)

type Service interface {
	// Breadcrumbs 生成面包屑之后触发 BeforeNavbarPrepareNodes，返回回调处理之后的节点
	Breadcrumbs(ctx context.Context, contextID int64) ([]domain.Node, error)
}

type service struct {
	builder    *BreadcrumbBuilder
	dispatcher *Dispatcher
}

func NewService(builder *BreadcrumbBuilder, dispatcher *Dispatcher) Service {
	return &service{
		builder:    builder,
		dispatcher: dispatcher,
	}
}

func (s *service) Breadcrumbs(ctx context.Context, contextID int64) ([]domain.Node, error) {
	page, items, err := s.builder.Build(ctx, contextID)
	if err != nil {
		return nil, err
	}
	hook := &domain.BeforeNavbarPrepareNodes{
		Items: items,
		Page:  page,
	}
	err = s.dispatcher.Dispatch(ctx, hook)
	if err != nil {
		return nil, err
	}
	return hook.Items, nil
}

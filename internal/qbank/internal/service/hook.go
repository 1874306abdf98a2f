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

	"github.com/ecodeclub/lms/internal/navigation"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
)

const BreadcrumbCallbackName = "qbank"

// BreadcrumbCallback 题库页面的面包屑中，小节节点换成课程题库列表
func BreadcrumbCallback(ctx context.Context, hook *navigation.BeforeNavbarPrepareNodes) error {
	page := hook.Page
	if !page.IsModulePage() || page.CM.ModName != domain.ModName {
		return nil
	}
	items := make([]navigation.Node, 0, len(hook.Items))
	for _, item := range hook.Items {
		if item.Type == navigation.TypeSection && item.Key == page.CM.SectionID {
			item = navigation.NewLinkNode(domain.Str("questionbank_plural"),
				domain.BankListURL(page.CM.CourseID, false))
		}
		items = append(items, item)
	}
	hook.Items = items
	return nil
}

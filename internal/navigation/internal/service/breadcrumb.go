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
	"fmt"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation/internal/domain"
)

const homeText = "Home"

type BreadcrumbBuilder struct {
	courseSvc course.Service
}

func NewBreadcrumbBuilder(courseSvc course.Service) *BreadcrumbBuilder {
	return &BreadcrumbBuilder{courseSvc: courseSvc}
}

// Build 按 站点 -> 课程 -> 章节 -> 活动 生成面包屑
func (b *BreadcrumbBuilder) Build(ctx context.Context, contextID int64) (domain.Page, []domain.Node, error) {
	cctx, err := b.courseSvc.Context(ctx, contextID)
	if err != nil {
		return domain.Page{}, nil, err
	}
	page := domain.Page{Context: cctx}
	items := []domain.Node{{Type: rootType(cctx.Level), Text: homeText, Action: "/"}}
	switch cctx.Level {
	case course.ContextCourse:
		page.Course, err = b.courseSvc.Get(ctx, cctx.InstanceID)
		if err != nil {
			return domain.Page{}, nil, err
		}
		if !page.Course.IsSite() {
			items = append(items, courseNode(page.Course))
		}
	case course.ContextModule:
		cm, err := b.courseSvc.GetCourseModule(ctx, cctx.InstanceID)
		if err != nil {
			return domain.Page{}, nil, err
		}
		page.CM = &cm
		page.Course, err = b.courseSvc.Get(ctx, cm.CourseID)
		if err != nil {
			return domain.Page{}, nil, err
		}
		if !page.Course.IsSite() {
			items = append(items, courseNode(page.Course), domain.Node{
				Key:    cm.SectionID,
				Type:   domain.TypeSection,
				Text:   fmt.Sprintf("Section %d", cm.SectionNum),
				Action: fmt.Sprintf("/course/section?id=%d", cm.SectionID),
			})
		}
		items = append(items, domain.Node{
			Key:    cm.ID,
			Type:   domain.TypeActivity,
			Text:   cm.ModName,
			Action: fmt.Sprintf("/mod/%s/view?id=%d", cm.ModName, cm.ID),
		})
	}
	return page, items, nil
}

// rootType 系统上下文下首页是 system 节点，其余是 root 节点
func rootType(level course.ContextLevel) domain.NodeType {
	if level == course.ContextSystem {
		return domain.TypeSystem
	}
	return domain.TypeRoot
}

func courseNode(c course.Course) domain.Node {
	return domain.Node{
		Key:    c.ID,
		Type:   domain.TypeCourse,
		Text:   c.ShortName,
		Action: fmt.Sprintf("/course/view?id=%d", c.ID),
	}
}

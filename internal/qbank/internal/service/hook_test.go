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
	"testing"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumbCallback(t *testing.T) {
	items := func() []navigation.Node {
		return []navigation.Node{
			{Type: navigation.TypeRoot, Text: "Home", Action: "/"},
			{Key: 3, Type: navigation.TypeCourse, Text: "go", Action: "/course/view?id=3"},
			{Key: 11, Type: navigation.TypeSection, Text: "Section 0", Action: "/course/section?id=11"},
			{Key: 7, Type: navigation.TypeActivity, Text: "qbank", Action: "/mod/qbank/view?id=7"},
		}
	}
	testCases := []struct {
		name string
		page navigation.Page
		want []navigation.Node
	}{
		{
			name: "题库页面",
			page: navigation.Page{
				Course: course.Course{ID: 3},
				CM:     &course.CourseModule{ID: 7, CourseID: 3, ModName: "qbank", SectionID: 11},
			},
			want: []navigation.Node{
				{Type: navigation.TypeRoot, Text: "Home", Action: "/"},
				{Key: 3, Type: navigation.TypeCourse, Text: "go", Action: "/course/view?id=3"},
				navigation.NewLinkNode("Question banks", "/question/banks?courseid=3"),
				{Key: 7, Type: navigation.TypeActivity, Text: "qbank", Action: "/mod/qbank/view?id=7"},
			},
		},
		{
			name: "其它活动页面",
			page: navigation.Page{
				Course: course.Course{ID: 3},
				CM:     &course.CourseModule{ID: 7, CourseID: 3, ModName: "quiz", SectionID: 11},
			},
			want: items(),
		},
		{
			name: "课程页面",
			page: navigation.Page{Course: course.Course{ID: 3}},
			want: items(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hook := &navigation.BeforeNavbarPrepareNodes{Items: items(), Page: tc.page}
			err := BreadcrumbCallback(context.Background(), hook)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hook.Items)
		})
	}
}

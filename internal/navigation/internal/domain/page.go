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

package domain

import "github.com/ecodeclub/lms/internal/course"

// Page 当前渲染的页面
type Page struct {
	Context course.Context
	Course  course.Course
	// CM 只有模块页面才有
	CM *course.CourseModule
}

func (p Page) IsModulePage() bool {
	return p.Context.ID > 0 && p.Context.Level == course.ContextModule && p.CM != nil
}

// BeforeNavbarPrepareNodes 导航栏渲染前触发，回调可以直接修改 Items
type BeforeNavbarPrepareNodes struct {
	Items []Node
	Page  Page
}

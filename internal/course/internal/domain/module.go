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

import "github.com/ecodeclub/ekit/slice"

type Feature string

const (
	FeatureUsesQuestions      Feature = "uses_questions"
	FeaturePublishesQuestions Feature = "publishes_questions"
)

// Plugin 一种活动模块类型，例如 qbank、quiz
type Plugin struct {
	Name     string    `yaml:"name"`
	Features []Feature `yaml:"features"`
}

func (p Plugin) Supports(f Feature) bool {
	return slice.Contains(p.Features, f)
}

type Module struct {
	ID      int64
	Name    string
	Visible bool
}

// CourseModule 课程中的一个活动实例
type CourseModule struct {
	ID                  int64
	CourseID            int64
	ModuleID            int64
	ModName             string
	Instance            int64
	SectionID           int64
	SectionNum          int
	IDNumber            string
	Visible             bool
	VisibleOnCoursePage bool
	GroupMode           GroupMode
	GroupingID          int64
	ShowDescription     bool
	DownloadContent     bool
	DeletionInProgress  bool
	ContextID           int64
}

// ModuleInfo 创建活动实例时需要的数据
type ModuleInfo struct {
	CourseID            int64
	ModName             string
	Instance            int64
	SectionNum          int
	IDNumber            string
	Visible             bool
	VisibleOnCoursePage bool
	GroupMode           GroupMode
	GroupingID          int64
	ShowDescription     bool
	DownloadContent     bool
}

// ModInfo 一门课程的全部活动实例
type ModInfo struct {
	CourseID int64
	CMs      []CourseModule
}

func (m ModInfo) InstancesOf(modName string) []CourseModule {
	return slice.FilterMap(m.CMs, func(idx int, src CourseModule) (CourseModule, bool) {
		return src, src.ModName == modName
	})
}

func (m ModInfo) CM(id int64) (CourseModule, bool) {
	return slice.Find(m.CMs, func(src CourseModule) bool {
		return src.ID == id
	})
}

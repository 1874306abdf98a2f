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

import (
	"fmt"

	"github.com/ecodeclub/lms/internal/course"
)

// ModName 题库活动插件名
const ModName = "qbank"

// RecentlyViewedPreference 最近打开过的题库上下文 ID，逗号分隔，最新的在前
const RecentlyViewedPreference = "recently_viewed_open_banks"

// MaxRecentlyViewed 最近打开的题库最多保留的个数
const MaxRecentlyViewed = 5

// Subtype 题库子类型
// system 每个课程最多一个，preview 整个站点最多一个，都由系统自动创建
type Subtype string

const (
	SubtypeStandard Subtype = "standard"
	SubtypeSystem   Subtype = "system"
	SubtypePreview  Subtype = "preview"
)

func (s Subtype) Valid() bool {
	switch s {
	case SubtypeStandard, SubtypeSystem, SubtypePreview:
		return true
	default:
		return false
	}
}

func (s Subtype) String() string {
	return string(s)
}

// PluginType 按照插件是否公开自己的题目来分类
type PluginType string

const (
	PluginTypeShared  PluginType = "shared"
	PluginTypePrivate PluginType = "private"
)

func (t PluginType) Valid() bool {
	return t == PluginTypeShared || t == PluginTypePrivate
}

// BankRecord 查询出来的原始记录
type BankRecord struct {
	CM              course.CourseModule
	Name            string
	CourseShortName string
	// Cats 数据库聚合出来的分类，见 DecodeCategories
	Cats string
}

// Bank 展示用的题库
type Bank struct {
	Name               string
	ModID              int64
	ContextID          int64
	CourseNameBankName string
	CM                 course.CourseModule
	Categories         []Category
}

type Category struct {
	ID        int64
	Name      string
	ContextID int64
	Enabled   bool
}

// FormatBank 只有当前选中的题库下的分类是可选的
func FormatBank(r BankRecord, currentBankID int64) Bank {
	return Bank{
		Name:               r.Name,
		ModID:              r.CM.ID,
		ContextID:          r.CM.ContextID,
		CourseNameBankName: fmt.Sprintf("%s - %s", r.CourseShortName, r.Name),
		CM:                 r.CM,
		Categories:         DecodeCategories(r.Cats, currentBankID != 0 && r.CM.ID == currentBankID),
	}
}

// ListQuery 空的切片和零值都表示不限制
type ListQuery struct {
	Type           PluginType
	InCourseIDs    []int64
	NotInCourseIDs []int64
	WithCategories bool
	CurrentBankID  int64
	// Capabilities 拥有任意一个即可
	Capabilities []string
}

// Instance 题库插件自己的实例数据
type Instance struct {
	ID          int64
	Course      int64
	Name        string
	Intro       string
	IntroFormat IntroFormat
	Type        Subtype
}

type IntroFormat uint8

const (
	FormatMoodle IntroFormat = iota
	FormatHTML
	FormatPlain
	FormatMarkdown
)

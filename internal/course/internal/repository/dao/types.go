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

package dao

import "gorm.io/gorm"

var ErrRecordNotFound = gorm.ErrRecordNotFound

const (
	ContextLevelSystem uint8 = 10
	ContextLevelCourse uint8 = 50
	ContextLevelModule uint8 = 70

	SystemContextID int64 = 1
	SiteID          int64 = 1
	siteContextID   int64 = 2
)

type Course struct {
	Id                int64  `gorm:"primaryKey,autoIncrement"`
	Category          int64  `gorm:"not null;default:0"`
	Shortname         string `gorm:"type:varchar(255);not null;index"`
	Fullname          string `gorm:"type:varchar(254);not null"`
	Groupmode         uint8  `gorm:"not null;default:0"`
	Defaultgroupingid int64  `gorm:"not null;default:0"`
	Ctime             int64
	Utime             int64
}

func (Course) TableName() string {
	return "courses"
}

type CourseSection struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Course  int64  `gorm:"not null;uniqueIndex:uniq_course_section"`
	Section int    `gorm:"not null;uniqueIndex:uniq_course_section"`
	Name    string `gorm:"type:varchar(255)"`
	Ctime   int64
	Utime   int64
}

func (CourseSection) TableName() string {
	return "course_sections"
}

type Context struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Contextlevel uint8  `gorm:"not null;uniqueIndex:uniq_level_instance"`
	Instanceid   int64  `gorm:"not null;uniqueIndex:uniq_level_instance"`
	Path         string `gorm:"type:varchar(255);index"`
	Depth        int    `gorm:"not null;default:0"`
}

func (Context) TableName() string {
	return "contexts"
}

// Module 已安装的活动模块类型
type Module struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Name    string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Visible bool   `gorm:"not null"`
	Ctime   int64
	Utime   int64
}

func (Module) TableName() string {
	return "modules"
}

type CourseModule struct {
	Id                  int64  `gorm:"primaryKey,autoIncrement"`
	Course              int64  `gorm:"not null;index"`
	Module              int64  `gorm:"not null;index"`
	Instance            int64  `gorm:"not null;index"`
	Section             int64  `gorm:"not null;default:0;comment:course_sections.id"`
	Idnumber            string `gorm:"type:varchar(100);not null;default:''"`
	Visible             bool   `gorm:"not null"`
	Visibleoncoursepage bool   `gorm:"not null"`
	Groupmode           uint8  `gorm:"not null;default:0"`
	Groupingid          int64  `gorm:"not null;default:0"`
	Showdescription     bool   `gorm:"not null"`
	Downloadcontent     bool   `gorm:"not null"`
	Deletioninprogress  bool   `gorm:"not null"`
	Ctime               int64
	Utime               int64
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// CourseModuleDetail 联表查询的结果
type CourseModuleDetail struct {
	CourseModule `gorm:"embedded"`
	ModName      string
	SectionNum   int
	ContextID    int64
}

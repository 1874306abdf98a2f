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

const contextLevelModule uint8 = 70

// QBank 题库插件的实例表
type QBank struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Course      int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(1333);not null"`
	Intro       string `gorm:"type:text"`
	Introformat uint8  `gorm:"not null;default:0"`
	Type        string `gorm:"type:varchar(10);not null;index;default:'standard'"`
	Ctime       int64
	Utime       int64
}

func (QBank) TableName() string {
	return "qbank"
}

// Quiz 测验插件的实例表，这里只用到名字
type Quiz struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Course      int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(1333);not null"`
	Intro       string `gorm:"type:text"`
	Introformat uint8  `gorm:"not null;default:0"`
	Ctime       int64
	Utime       int64
}

func (Quiz) TableName() string {
	return "quiz"
}

// QuestionCategory parent = 0 的是每个上下文的顶级分类，不会展示
type QuestionCategory struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Contextid int64  `gorm:"not null;index"`
	Info      string `gorm:"type:text"`
	Parent    int64  `gorm:"not null;default:0;index"`
	Sortorder int64  `gorm:"not null;default:999"`
	Ctime     int64
	Utime     int64
}

func (QuestionCategory) TableName() string {
	return "question_categories"
}

// BankRow 题库列表查询的一行
type BankRow struct {
	Id                  int64
	Course              int64
	Module              int64
	Instance            int64
	Section             int64
	Idnumber            string
	Visible             bool
	Visibleoncoursepage bool
	Groupmode           uint8
	Groupingid          int64
	Showdescription     bool
	Downloadcontent     bool
	Deletioninprogress  bool
	ModName             string
	SectionNum          int
	ContextID           int64
	CourseShortName     string
	Name                string
	Cats                string
}

// BankQuery 空的切片和零值表示不限制
type BankQuery struct {
	// Plugins 需要联表的插件，也就是插件的实例表名
	Plugins        []string
	InCourseIDs    []int64
	NotInCourseIDs []int64
	CMIDs          []int64
	WithCategories bool
	CurrentBankID  int64
}

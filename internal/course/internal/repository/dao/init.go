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

import (
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&Course{},
		&CourseSection{},
		&Context{},
		&Module{},
		&CourseModule{},
	)
	if err != nil {
		return err
	}
	return initSite(db)
}

// initSite 系统上下文、站点课程及其上下文都是固定 ID
func initSite(db *gorm.DB) error {
	now := time.Now().UnixMilli()
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&Context{
			Id:           SystemContextID,
			Contextlevel: ContextLevelSystem,
			Path:         "/1",
			Depth:        1,
		}).Error
		if err != nil {
			return err
		}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&Course{
			Id:        SiteID,
			Shortname: "site",
			Fullname:  "Site",
			Ctime:     now,
			Utime:     now,
		}).Error
		if err != nil {
			return err
		}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&Context{
			Id:           siteContextID,
			Contextlevel: ContextLevelCourse,
			Instanceid:   SiteID,
			Path:         "/1/2",
			Depth:        2,
		}).Error
		if err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&CourseSection{
			Course: SiteID,
			Ctime:  now,
			Utime:  now,
		}).Error
	})
}

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

package web

import "github.com/ecodeclub/lms/internal/course/internal/domain"

type Course struct {
	ID                int64  `json:"id,omitempty"`
	Category          int64  `json:"category,omitempty"`
	ShortName         string `json:"shortName,omitempty"`
	FullName          string `json:"fullName,omitempty"`
	GroupMode         uint8  `json:"groupMode,omitempty"`
	DefaultGroupingID int64  `json:"defaultGroupingId,omitempty"`
	Utime             int64  `json:"utime,omitempty"`
}

func (c Course) toDomain() domain.Course {
	return domain.Course{
		ID:                c.ID,
		Category:          c.Category,
		ShortName:         c.ShortName,
		FullName:          c.FullName,
		GroupMode:         domain.GroupMode(c.GroupMode),
		DefaultGroupingID: c.DefaultGroupingID,
	}
}

func newCourse(c domain.Course) Course {
	return Course{
		ID:                c.ID,
		Category:          c.Category,
		ShortName:         c.ShortName,
		FullName:          c.FullName,
		GroupMode:         uint8(c.GroupMode),
		DefaultGroupingID: c.DefaultGroupingID,
		Utime:             c.Utime,
	}
}

type SaveReq struct {
	Course Course `json:"course"`
}

type CourseID struct {
	ID int64 `json:"id"`
}

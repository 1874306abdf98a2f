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

package event

import "github.com/ecodeclub/lms/internal/course/internal/domain"

const (
	CourseEventName = "course_events"

	ActionCreated = "created"
	ActionUpdated = "updated"
)

type CourseEvent struct {
	CourseID  int64  `json:"courseId"`
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName"`
	Action    string `json:"action"`
}

func NewCourseEvent(c domain.Course, action string) CourseEvent {
	return CourseEvent{
		CourseID:  c.ID,
		ShortName: c.ShortName,
		FullName:  c.FullName,
		Action:    action,
	}
}

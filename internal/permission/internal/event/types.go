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

import (
	"github.com/ecodeclub/lms/internal/permission/internal/domain"
)

const (
	RoleAssignmentEventName = "role_assignment_events"

	ActionAssign   = "assign"
	ActionUnassign = "unassign"
)

type RoleAssignmentEvent struct {
	Uid        int64   `json:"uid"`
	Role       string  `json:"role"` // editingteacher, teacher, student
	ContextIDs []int64 `json:"contextIds"`
	Action     string  `json:"action"` // assign, unassign
}

func (e RoleAssignmentEvent) toDomain() []domain.RoleAssignment {
	r := make([]domain.RoleAssignment, 0, len(e.ContextIDs))
	for _, id := range e.ContextIDs {
		r = append(r, domain.RoleAssignment{
			Uid:       e.Uid,
			Role:      e.Role,
			ContextID: id,
		})
	}
	return r
}

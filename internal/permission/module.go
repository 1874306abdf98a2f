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

package permission

import (
	"github.com/ecodeclub/lms/internal/permission/internal/domain"
	"github.com/ecodeclub/lms/internal/permission/internal/event"
	"github.com/ecodeclub/lms/internal/permission/internal/service"
)

type Module struct {
	Svc Service
	C   *RoleAssignmentEventConsumer
}

type (
	Service                     = service.Service
	Actor                       = domain.Actor
	Role                        = domain.Role
	RoleAssignment              = domain.RoleAssignment
	RoleAssignmentEventConsumer = event.RoleAssignmentEventConsumer
	RoleAssignmentEvent         = event.RoleAssignmentEvent
)

const RoleAssignmentEventName = event.RoleAssignmentEventName

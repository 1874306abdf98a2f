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

package navigation

import (
	"github.com/ecodeclub/lms/internal/navigation/internal/domain"
	"github.com/ecodeclub/lms/internal/navigation/internal/service"
	"github.com/ecodeclub/lms/internal/navigation/internal/web"
)

type Module struct {
	Svc        Service
	Dispatcher *Dispatcher
	Hdl        *Handler
}

type (
	Service    = service.Service
	Dispatcher = service.Dispatcher
	Callback   = service.Callback
	Handler    = web.Handler

	Node                     = domain.Node
	NodeType                 = domain.NodeType
	Page                     = domain.Page
	BeforeNavbarPrepareNodes = domain.BeforeNavbarPrepareNodes
)

const (
	TypeUnknown  = domain.TypeUnknown
	TypeRoot     = domain.TypeRoot
	TypeCourse   = domain.TypeCourse
	TypeSection  = domain.TypeSection
	TypeActivity = domain.TypeActivity
	TypeCustom   = domain.TypeCustom
)

var NewLinkNode = domain.NewLinkNode

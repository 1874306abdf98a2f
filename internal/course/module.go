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

package course

import (
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/event"
	"github.com/ecodeclub/lms/internal/course/internal/service"
	"github.com/ecodeclub/lms/internal/course/internal/web"
)

type Module struct {
	Svc      Service
	Registry *PluginRegistry
	AdminHdl *AdminHandler
}

type (
	Service        = service.Service
	PluginRegistry = service.PluginRegistry
	AdminHandler   = web.AdminHandler

	Course       = domain.Course
	CourseModule = domain.CourseModule
	ModuleInfo   = domain.ModuleInfo
	ModInfo      = domain.ModInfo
	Context      = domain.Context
	ContextLevel = domain.ContextLevel
	Plugin       = domain.Plugin
	Feature      = domain.Feature
	GroupMode    = domain.GroupMode

	CourseEvent = event.CourseEvent
)

const (
	SiteID          = domain.SiteID
	SystemContextID = domain.SystemContextID

	ContextSystem = domain.ContextSystem
	ContextCourse = domain.ContextCourse
	ContextModule = domain.ContextModule

	FeatureUsesQuestions      = domain.FeatureUsesQuestions
	FeaturePublishesQuestions = domain.FeaturePublishesQuestions

	CourseEventName     = event.CourseEventName
	CourseActionCreated = event.ActionCreated
)

var (
	ErrNotFound      = service.ErrNotFound
	ErrUnknownModule = service.ErrUnknownModule

	NewPluginRegistry = service.NewPluginRegistry
)

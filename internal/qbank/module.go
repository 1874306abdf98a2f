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

package qbank

import (
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	"github.com/ecodeclub/lms/internal/qbank/internal/event"
	"github.com/ecodeclub/lms/internal/qbank/internal/job"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	"github.com/ecodeclub/lms/internal/qbank/internal/web"
)

type Module struct {
	Svc            Service
	Hdl            *Handler
	C              *CourseEventConsumer
	PreviewBankJob *EnsurePreviewBankJob
}

type (
	Service              = service.Service
	Handler              = web.Handler
	CourseEventConsumer  = event.CourseEventConsumer
	EnsurePreviewBankJob = job.EnsurePreviewBankJob

	Bank      = domain.Bank
	Subtype   = domain.Subtype
	ListQuery = domain.ListQuery
)

const (
	SubtypeStandard = domain.SubtypeStandard
	SubtypeSystem   = domain.SubtypeSystem
	SubtypePreview  = domain.SubtypePreview
)

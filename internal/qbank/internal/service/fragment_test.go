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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/lms/internal/course"
	coursemocks "github.com/ecodeclub/lms/internal/course/mocks"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	qbankmocks "github.com/ecodeclub/lms/internal/qbank/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFragmentRenderer_SwitchQuestionBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := qbankmocks.NewMockService(ctrl)
	courseSvc := coursemocks.NewMockService(ctrl)

	courseSvc.EXPECT().Context(gomock.Any(), int64(40)).
		Return(course.Context{ID: 40, Level: course.ContextModule, InstanceID: 15}, nil)
	courseSvc.EXPECT().GetCourseModule(gomock.Any(), int64(15)).
		Return(course.CourseModule{ID: 15, CourseID: 3, ModName: "quiz"}, nil)
	svc.EXPECT().ListBankInstances(gomock.Any(), actor, domain.ListQuery{
		Type:          domain.PluginTypeShared,
		InCourseIDs:   []int64{3},
		CurrentBankID: 7,
		Capabilities:  UseCaps,
	}).Return([]domain.Bank{{ModID: 7, ContextID: 30, CourseNameBankName: "go - <b>Bank</b>"}}, nil)
	svc.EXPECT().ListBankInstances(gomock.Any(), actor, domain.ListQuery{
		Type:           domain.PluginTypeShared,
		NotInCourseIDs: []int64{3},
		CurrentBankID:  7,
		Capabilities:   UseCaps,
	}).Return([]domain.Bank{{ModID: 8, ContextID: 31, CourseNameBankName: "rust - Shared"}}, nil)
	svc.EXPECT().RecentlyViewed(gomock.Any(), actor, int64(3)).Return([]domain.Bank{}, nil)

	r := NewFragmentRenderer(svc, courseSvc)
	html, err := r.SwitchQuestionBank(context.Background(), actor, 40, 15, 7)
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="search-banks" data-quizcmid="15">`)
	assert.Contains(t, html, `<option value="7" data-contextid="30" selected>go - &lt;b&gt;Bank&lt;/b&gt;</option>`)
	assert.Contains(t, html, `<option value="8" data-contextid="31">rust - Shared</option>`)
	assert.Contains(t, html, `<optgroup label="Recently viewed"><option disabled>No question banks</option></optgroup>`)
	assert.Contains(t, html, `<div class="form-autocomplete-selection"></div>`)
}

func TestFragmentRenderer_InvalidContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	courseSvc := coursemocks.NewMockService(ctrl)
	courseSvc.EXPECT().Context(gomock.Any(), int64(9)).
		Return(course.Context{ID: 9, Level: course.ContextCourse}, nil)

	r := NewFragmentRenderer(qbankmocks.NewMockService(ctrl), courseSvc)
	_, err := r.SwitchQuestionBank(context.Background(), actor, 9, 15, 7)
	assert.ErrorIs(t, err, ErrInvalidContextLevel)
}

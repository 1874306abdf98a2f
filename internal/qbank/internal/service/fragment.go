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
	"bytes"
	"context"
	"html/template"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	"golang.org/x/sync/errgroup"
)

var switchBankTpl = template.Must(template.New("switch_question_bank").Parse(
	`<div class="search-banks" data-quizcmid="{{.QuizCMID}}">` +
		`<select class="form-control" name="searchbanks" data-action="switch-bank" data-placeholder="{{.Placeholder}}">` +
		`{{range .Groups}}<optgroup label="{{.Label}}">` +
		`{{range .Banks}}<option value="{{.ModID}}" data-contextid="{{.ContextID}}"{{if eq .ModID $.BankModID}} selected{{end}}>{{.CourseNameBankName}}</option>{{else}}` +
		`<option disabled>{{$.Empty}}</option>{{end}}` +
		`</optgroup>{{end}}` +
		`</select>` +
		`<div class="form-autocomplete-selection"></div>` +
		`</div>`))

type bankGroup struct {
	Label string
	Banks []domain.Bank
}

type switchBankData struct {
	QuizCMID    int64
	BankModID   int64
	Placeholder string
	Empty       string
	Groups      []bankGroup
}

// FragmentRenderer 切换题库弹窗的 HTML 片段
type FragmentRenderer struct {
	svc       Service
	courseSvc course.Service
}

func NewFragmentRenderer(svc Service, courseSvc course.Service) *FragmentRenderer {
	return &FragmentRenderer{svc: svc, courseSvc: courseSvc}
}

// SwitchQuestionBank contextID 是测验的模块上下文
// 三组分别是本课程的题库、其它课程共享的题库、最近打开过的题库
func (r *FragmentRenderer) SwitchQuestionBank(ctx context.Context, actor permission.Actor,
	contextID, quizCMID, bankModID int64) (string, error) {
	quizCtx, err := r.courseSvc.Context(ctx, contextID)
	if err != nil {
		return "", err
	}
	if quizCtx.Level != course.ContextModule {
		return "", ErrInvalidContextLevel
	}
	quiz, err := r.courseSvc.GetCourseModule(ctx, quizCtx.InstanceID)
	if err != nil {
		return "", err
	}

	var (
		eg                   errgroup.Group
		inCourse, shared, rv []domain.Bank
	)
	eg.Go(func() error {
		var err error
		inCourse, err = r.svc.ListBankInstances(ctx, actor, domain.ListQuery{
			Type:          domain.PluginTypeShared,
			InCourseIDs:   []int64{quiz.CourseID},
			CurrentBankID: bankModID,
			Capabilities:  UseCaps,
		})
		return err
	})
	eg.Go(func() error {
		var err error
		shared, err = r.svc.ListBankInstances(ctx, actor, domain.ListQuery{
			Type:           domain.PluginTypeShared,
			NotInCourseIDs: []int64{quiz.CourseID},
			CurrentBankID:  bankModID,
			Capabilities:   UseCaps,
		})
		return err
	})
	eg.Go(func() error {
		var err error
		rv, err = r.svc.RecentlyViewed(ctx, actor, quiz.CourseID)
		return err
	})
	if err = eg.Wait(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = switchBankTpl.Execute(&buf, switchBankData{
		QuizCMID:    quizCMID,
		BankModID:   bankModID,
		Placeholder: domain.Str("searchbyname"),
		Empty:       domain.Str("nobanks"),
		Groups: []bankGroup{
			{Label: domain.Str("banksincourse"), Banks: inCourse},
			{Label: domain.Str("sharedbanks"), Banks: shared},
			{Label: domain.Str("recentlyviewed"), Banks: rv},
		},
	})
	return buf.String(), err
}

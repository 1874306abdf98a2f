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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
)

type ListReq struct {
	InCourseIDs    []int64  `json:"inCourseIds"`
	NotInCourseIDs []int64  `json:"notInCourseIds"`
	WithCategories bool     `json:"withCategories"`
	CurrentBankID  int64    `json:"currentBankId"`
	Capabilities   []string `json:"capabilities"`
}

func (r ListReq) toQuery(t domain.PluginType) domain.ListQuery {
	return domain.ListQuery{
		Type:           t,
		InCourseIDs:    r.InCourseIDs,
		NotInCourseIDs: r.NotInCourseIDs,
		WithCategories: r.WithCategories,
		CurrentBankID:  r.CurrentBankID,
		Capabilities:   r.Capabilities,
	}
}

type RecentReq struct {
	ExcludeCourseID int64 `json:"excludeCourseId"`
}

type ViewedReq struct {
	ContextID int64 `json:"contextId"`
}

type CreateReq struct {
	CourseID int64  `json:"courseId"`
	Name     string `json:"name"`
}

type FragmentReq struct {
	ContextID int64 `json:"contextId"`
	QuizCMID  int64 `json:"quizcmid"`
	BankModID int64 `json:"bankmodid"`
}

type ModalReq struct {
	FragmentReq
	AddOnPage int64  `json:"addonpage"`
	Title     string `json:"title"`
	Selector  string `json:"selector"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ContextID int64  `json:"contextid"`
	Enabled   bool   `json:"enabled"`
}

type Bank struct {
	Name               string     `json:"name"`
	ModID              int64      `json:"modid"`
	ContextID          int64      `json:"contextid"`
	CourseID           int64      `json:"courseid"`
	CourseNameBankName string     `json:"coursenamebankname"`
	Categories         []Category `json:"questioncategories"`
}

func newBank(b domain.Bank) Bank {
	return Bank{
		Name:               b.Name,
		ModID:              b.ModID,
		ContextID:          b.ContextID,
		CourseID:           b.CM.CourseID,
		CourseNameBankName: b.CourseNameBankName,
		Categories: slice.Map(b.Categories, func(idx int, src domain.Category) Category {
			return Category{
				ID:        src.ID,
				Name:      src.Name,
				ContextID: src.ContextID,
				Enabled:   src.Enabled,
			}
		}),
	}
}

func newBanks(banks []domain.Bank) []Bank {
	return slice.Map(banks, func(idx int, src domain.Bank) Bank {
		return newBank(src)
	})
}

type CourseModule struct {
	ID        int64 `json:"id"`
	CourseID  int64 `json:"courseid"`
	Instance  int64 `json:"instance"`
	ContextID int64 `json:"contextid"`
}

type BankList struct {
	CourseID int64  `json:"courseid"`
	Banks    []Bank `json:"banks"`
}

type Autocomplete struct {
	Selector    string `json:"selector"`
	Placeholder string `json:"placeholder"`
}

type Modal struct {
	Title         string              `json:"title"`
	Footer        string              `json:"footer"`
	Body          string              `json:"body"`
	Autocompletes []Autocomplete      `json:"autocompletes"`
	Classes       map[string][]string `json:"classes"`
}

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

package domain

import (
	"testing"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/stretchr/testify/assert"
)

func TestFormatBank(t *testing.T) {
	r := BankRecord{
		CM:              course.CourseModule{ID: 7, CourseID: 3, ContextID: 30},
		Name:            "Go bank",
		CourseShortName: "go",
		Cats:            "3<->Default<->30",
	}
	testCases := []struct {
		name          string
		currentBankID int64
		wantEnabled   bool
	}{
		{name: "当前题库", currentBankID: 7, wantEnabled: true},
		{name: "其它题库", currentBankID: 8},
		{name: "没有当前题库"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := FormatBank(r, tc.currentBankID)
			assert.Equal(t, Bank{
				Name:               "Go bank",
				ModID:              7,
				ContextID:          30,
				CourseNameBankName: "go - Go bank",
				CM:                 r.CM,
				Categories: []Category{
					{ID: 3, Name: "Default", ContextID: 30, Enabled: tc.wantEnabled},
				},
			}, b)
		})
	}
}

func TestSubtype_Valid(t *testing.T) {
	assert.True(t, SubtypeStandard.Valid())
	assert.True(t, SubtypeSystem.Valid())
	assert.True(t, SubtypePreview.Valid())
	assert.False(t, Subtype("").Valid())
	assert.False(t, Subtype("STANDARD").Valid())
	assert.True(t, PluginTypeShared.Valid())
	assert.False(t, PluginType("all").Valid())
}

func TestStr(t *testing.T) {
	assert.Equal(t, "Question banks", Str("questionbank_plural"))
	assert.Equal(t, "Go course question bank", DefaultBankName("Go"))
	assert.Equal(t, "missing", Str("missing"))
}

func TestBankListURL(t *testing.T) {
	assert.Equal(t, "/question/banks?courseid=3", BankListURL(3, false))
	assert.Equal(t, "/question/banks?courseid=3&createdefault=1", BankListURL(3, true))
}

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

import "fmt"

var strs = map[string]string{
	"questionbank_plural":   "Question banks",
	"systembank":            "System shared question bank",
	"previewbank":           "Question preview bank",
	"systembankdescription": "This question bank is created automatically and holds the questions that are shared across the course.",
	"defaultbank":           "%s course question bank",
	"selectquestionbank":    "Select question bank",
	"gobacktoquiz":          "Go back to quiz",
	"searchbyname":          "Search by name",
	"banksincourse":         "Question banks in this course",
	"sharedbanks":           "Shared question banks",
	"recentlyviewed":        "Recently viewed",
	"nobanks":               "No question banks",
}

// Str 按 ID 取文案，不存在的直接返回 ID
func Str(id string, args ...any) string {
	s, ok := strs[id]
	if !ok {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

// DefaultBankName 课程默认题库的名字
func DefaultBankName(courseFullName string) string {
	return Str("defaultbank", courseFullName)
}

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
	"net/url"
	"strconv"
)

const bankListPath = "/question/banks"

// BankListURL 课程的题库列表页面
func BankListURL(courseID int64, createDefault bool) string {
	q := url.Values{}
	q.Set("courseid", strconv.FormatInt(courseID, 10))
	if createDefault {
		q.Set("createdefault", "1")
	}
	u := url.URL{Path: bankListPath, RawQuery: q.Encode()}
	return u.String()
}

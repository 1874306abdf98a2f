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

// MaxPreferenceValueLen 偏好值的最大长度
const MaxPreferenceValueLen = 1333

// Preference 用户偏好，同一个用户下 Name 唯一
type Preference struct {
	Uid   int64
	Name  string
	Value string
}

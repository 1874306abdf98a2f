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
	"strconv"
	"strings"
)

// RecentlyViewed 解析偏好中的上下文 ID，保留原始的字符串以便清理
type RecentlyViewed []string

func ParseRecentlyViewed(pref string) RecentlyViewed {
	if strings.TrimSpace(pref) == "" {
		return RecentlyViewed{}
	}
	return strings.Split(pref, ",")
}

func (r RecentlyViewed) String() string {
	return strings.Join(r, ",")
}

// Without 去掉 invalid 中的所有项
func (r RecentlyViewed) Without(invalid map[string]struct{}) RecentlyViewed {
	res := make(RecentlyViewed, 0, len(r))
	for _, id := range r {
		if _, ok := invalid[id]; ok {
			continue
		}
		res = append(res, id)
	}
	return res
}

// Push 放到最前面，去重，最多保留 MaxRecentlyViewed 个
func (r RecentlyViewed) Push(contextID int64) RecentlyViewed {
	id := strconv.FormatInt(contextID, 10)
	res := make(RecentlyViewed, 0, MaxRecentlyViewed)
	res = append(res, id)
	for _, old := range r {
		if len(res) >= MaxRecentlyViewed {
			break
		}
		if strings.TrimSpace(old) == id {
			continue
		}
		res = append(res, old)
	}
	return res
}

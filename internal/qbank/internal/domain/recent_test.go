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

	"github.com/stretchr/testify/assert"
)

func TestRecentlyViewed_Push(t *testing.T) {
	testCases := []struct {
		name      string
		pref      string
		contextID int64
		want      string
	}{
		{name: "空", contextID: 30, want: "30"},
		{name: "新的放前面", pref: "31,32", contextID: 30, want: "30,31,32"},
		{name: "去重", pref: "31,30,32", contextID: 30, want: "30,31,32"},
		{name: "最多五个", pref: "31,32,33,34,35", contextID: 30, want: "30,31,32,33,34"},
		{name: "已存在时不丢弃其它项", pref: "31,32,33,34,30", contextID: 30, want: "30,31,32,33,34"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseRecentlyViewed(tc.pref).Push(tc.contextID).String())
		})
	}
}

func TestRecentlyViewed_Without(t *testing.T) {
	r := ParseRecentlyViewed("30,abc,31,32")
	assert.Equal(t, RecentlyViewed{"30", "abc", "31", "32"}, r)
	got := r.Without(map[string]struct{}{"abc": {}, "32": {}})
	assert.Equal(t, "30,31", got.String())
	assert.Equal(t, RecentlyViewed{}, ParseRecentlyViewed("  "))
}

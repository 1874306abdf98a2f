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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCategories(t *testing.T) {
	testCases := []struct {
		name    string
		cats    string
		enabled bool
		want    []Category
	}{
		{
			name: "空",
			want: []Category{},
		},
		{
			name:    "一个分类",
			cats:    "3<->Default for Go<->30",
			enabled: true,
			want:    []Category{{ID: 3, Name: "Default for Go", ContextID: 30, Enabled: true}},
		},
		{
			name: "多个分类",
			cats: "3<->Default<->30,4<->Chapter 1<->30,5<->Chapter 2<->31",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
				{ID: 4, Name: "Chapter 1", ContextID: 30},
				{ID: 5, Name: "Chapter 2", ContextID: 31},
			},
		},
		{
			name: "名字里有逗号",
			cats: "3<->a, b<->30,4<->c,d<->30",
			want: []Category{
				{ID: 3, Name: "a, b", ContextID: 30},
				{ID: 4, Name: "c,d", ContextID: 30},
			},
		},
		{
			name: "格式不对",
			cats: "3<->Default",
			want: []Category{},
		},
		{
			name: "截断在分类名中间",
			cats: "3<->Default<->30,4<->Chapter 1<->30,5<->Chap",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
				{ID: 4, Name: "Chapter 1", ContextID: 30},
			},
		},
		{
			name: "截断在分隔符中间",
			cats: "3<->Default<->30,4<->Chapter 1<-",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
			},
		},
		{
			name: "截断在下一个分类ID",
			cats: "3<->Default<->30,4<->Chapter 1<->30,5",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
				{ID: 4, Name: "Chapter 1", ContextID: 30},
			},
		},
		{
			name: "截断在逗号之后",
			cats: "3<->Default<->30,",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
			},
		},
		{
			name: "分类名里有分隔符",
			cats: "1<->x<->30,3<->a<->b<->30,4<->c<->30",
			want: []Category{
				{ID: 1, Name: "x", ContextID: 30},
			},
		},
		{
			name: "ID不是数字",
			cats: "3<->Default<->30,x<->Chapter 1<->30",
			want: []Category{
				{ID: 3, Name: "Default", ContextID: 30},
			},
		},
		{
			name: "中间缺少逗号",
			cats: "3<->a<->30 4<->b<->30",
			want: []Category{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeCategories(tc.cats, tc.enabled))
		})
	}
}

func TestDecodeCategories_Truncated(t *testing.T) {
	cats := make([]Category, 0, 40)
	for i := 1; i <= 40; i++ {
		cats = append(cats, Category{
			ID:        int64(100 + i),
			Name:      fmt.Sprintf("Chapter %02d exercises", i),
			ContextID: 30,
		})
	}
	encoded := EncodeCategories(cats)
	require.Greater(t, len(encoded), 1024)
	assert.Equal(t, cats, DecodeCategories(encoded, false))

	// 默认 group_concat_max_len 是 1024 字节
	for cut := 1000; cut <= 1024; cut++ {
		got := DecodeCategories(encoded[:cut], false)
		require.NotEmpty(t, got, "cut=%d", cut)
		// 最后一个可能只剩部分上下文ID，前面的都必须完整
		n := len(got) - 1
		assert.Equal(t, cats[:n], got[:n], "cut=%d", cut)
		assert.Equal(t, cats[n].ID, got[n].ID, "cut=%d", cut)
		assert.Equal(t, cats[n].Name, got[n].Name, "cut=%d", cut)
	}
}

func TestEncodeCategories(t *testing.T) {
	cats := []Category{
		{ID: 3, Name: "Default", ContextID: 30},
		{ID: 4, Name: "x, y", ContextID: 31},
	}
	encoded := EncodeCategories(cats)
	assert.Equal(t, "3<->Default<->30,4<->x, y<->31", encoded)
	assert.Equal(t, cats, DecodeCategories(encoded, false))
}

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

// CategoryDelimiter 分类内部字段的分隔符
// 聚合结果形如 1<->默认<->21,2<->第一章<->21
const CategoryDelimiter = "<->"

// DecodeCategories 分类名里可以有逗号，所以先按 <-> 切分，
// 中间的 "上下文ID,下一个分类ID" 再按第一个逗号拆开。
// 聚合结果可能被数据库截断，只保留完整的分类，末尾残缺的部分直接丢弃。
// 分类名里本身含有 <-> 时无法区分，该分类及其后面的分类会被丢弃或错位。
func DecodeCategories(cats string, enabled bool) []Category {
	if cats == "" {
		return []Category{}
	}
	tokens := strings.Split(cats, CategoryDelimiter)
	// id, name, (ctx,id, name)*, ctx
	res := make([]Category, 0, len(tokens)/2)
	nextID := tokens[0]
	for i := 1; i+1 < len(tokens); i += 2 {
		name := tokens[i]
		ctxID, following, hasNext := strings.Cut(tokens[i+1], ",")
		last := i+2 >= len(tokens)
		if !last && !hasNext {
			return res
		}
		id, err := strconv.ParseInt(strings.TrimSpace(nextID), 10, 64)
		if err != nil {
			return res
		}
		cid, err := strconv.ParseInt(strings.TrimSpace(ctxID), 10, 64)
		if err != nil {
			return res
		}
		res = append(res, Category{
			ID:        id,
			Name:      name,
			ContextID: cid,
			Enabled:   enabled,
		})
		nextID = following
	}
	return res
}

// EncodeCategories 与数据库聚合的格式一致
func EncodeCategories(cats []Category) string {
	var sb strings.Builder
	for i, c := range cats {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(c.ID, 10))
		sb.WriteString(CategoryDelimiter)
		sb.WriteString(c.Name)
		sb.WriteString(CategoryDelimiter)
		sb.WriteString(strconv.FormatInt(c.ContextID, 10))
	}
	return sb.String()
}

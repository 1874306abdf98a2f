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

type ContextLevel uint8

const (
	ContextSystem ContextLevel = 10
	ContextCourse ContextLevel = 50
	ContextModule ContextLevel = 70
)

func (l ContextLevel) ToUint8() uint8 {
	return uint8(l)
}

// SystemContextID 系统上下文，所有上下文的根
const SystemContextID int64 = 1

// Context 权限与寻址的层级范围：系统 -> 课程 -> 模块
// Path 形如 /1/5/23，从根到自身
type Context struct {
	ID         int64
	Level      ContextLevel
	InstanceID int64
	Path       string
	Depth      int
}

// PathIDs 返回从根到自身的上下文 ID
func (c Context) PathIDs() []int64 {
	segs := strings.Split(strings.Trim(c.Path, "/"), "/")
	res := make([]int64, 0, len(segs))
	for _, seg := range segs {
		id, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			continue
		}
		res = append(res, id)
	}
	if len(res) == 0 && c.ID > 0 {
		res = append(res, c.ID)
	}
	return res
}

func (c Context) ChildPath(id int64) string {
	return c.Path + "/" + strconv.FormatInt(id, 10)
}

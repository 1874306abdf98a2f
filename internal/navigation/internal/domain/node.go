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

type NodeType uint8

const (
	TypeUnknown NodeType = iota
	TypeRoot
	TypeSystem
	TypeCourse
	TypeSection
	TypeActivity
	TypeCustom
)

func (t NodeType) String() string {
	switch t {
	case TypeRoot:
		return "root"
	case TypeSystem:
		return "system"
	case TypeCourse:
		return "course"
	case TypeSection:
		return "section"
	case TypeActivity:
		return "activity"
	case TypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Node 面包屑中的一个节点
// Key 在同一种 Type 下唯一，课程节点是课程 ID，章节节点是章节 ID，活动节点是 cm ID
type Node struct {
	Key    int64
	Type   NodeType
	Text   string
	Action string
}

// NewLinkNode 只有文本和链接的节点
func NewLinkNode(text, action string) Node {
	return Node{
		Type:   TypeCustom,
		Text:   text,
		Action: action,
	}
}

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

package web

import "github.com/ecodeclub/lms/internal/navigation/internal/domain"

type BreadcrumbReq struct {
	ContextID int64 `json:"contextId"`
}

type Node struct {
	Key    int64  `json:"key,omitempty"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}

func newNode(n domain.Node) Node {
	return Node{
		Key:    n.Key,
		Type:   n.Type.String(),
		Text:   n.Text,
		Action: n.Action,
	}
}

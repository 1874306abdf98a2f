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

package service

import (
	"fmt"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
)

// PluginTypes 按照是否公开题目对插件分类，启动时构造一次，之后只读
// 不使用题目的插件不在任何一个分类中
type PluginTypes struct {
	shared  []string
	private []string
}

func NewPluginTypes(plugins []course.Plugin) *PluginTypes {
	res := &PluginTypes{}
	for _, p := range plugins {
		if !p.Supports(course.FeatureUsesQuestions) {
			continue
		}
		if p.Supports(course.FeaturePublishesQuestions) {
			res.shared = append(res.shared, p.Name)
		} else {
			res.private = append(res.private, p.Name)
		}
	}
	return res
}

func (p *PluginTypes) Shared() []string {
	return p.clone(p.shared)
}

func (p *PluginTypes) Private() []string {
	return p.clone(p.private)
}

// All 所有使用题目的插件
func (p *PluginTypes) All() []string {
	res := make([]string, 0, len(p.shared)+len(p.private))
	res = append(res, p.shared...)
	return append(res, p.private...)
}

func (p *PluginTypes) Of(t domain.PluginType) ([]string, error) {
	switch t {
	case domain.PluginTypeShared:
		return p.Shared(), nil
	case domain.PluginTypePrivate:
		return p.Private(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPluginType, t)
	}
}

func (p *PluginTypes) clone(src []string) []string {
	res := make([]string, len(src))
	copy(res, src)
	return res
}

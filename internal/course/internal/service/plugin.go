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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
)

// PluginRegistry 已安装的活动插件，启动时构造，之后只读
type PluginRegistry struct {
	plugins []domain.Plugin
	byName  map[string]domain.Plugin
}

func NewPluginRegistry(plugins []domain.Plugin) *PluginRegistry {
	res := &PluginRegistry{
		plugins: make([]domain.Plugin, 0, len(plugins)),
		byName:  make(map[string]domain.Plugin, len(plugins)),
	}
	for _, p := range plugins {
		if _, ok := res.byName[p.Name]; ok || p.Name == "" {
			continue
		}
		res.plugins = append(res.plugins, p)
		res.byName[p.Name] = p
	}
	return res
}

// DefaultPlugins 没有配置时使用
func DefaultPlugins() []domain.Plugin {
	return []domain.Plugin{
		{
			Name: "qbank",
			Features: []domain.Feature{
				domain.FeatureUsesQuestions,
				domain.FeaturePublishesQuestions,
			},
		},
		{
			Name:     "quiz",
			Features: []domain.Feature{domain.FeatureUsesQuestions},
		},
		{Name: "forum"},
		{Name: "assign"},
	}
}

func (r *PluginRegistry) Plugins() []domain.Plugin {
	res := make([]domain.Plugin, len(r.plugins))
	copy(res, r.plugins)
	return res
}

func (r *PluginRegistry) Plugin(name string) (domain.Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

func (r *PluginRegistry) Names() []string {
	return slice.Map(r.plugins, func(idx int, src domain.Plugin) string {
		return src.Name
	})
}

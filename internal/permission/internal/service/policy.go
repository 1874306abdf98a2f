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
	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/lms/internal/permission/internal/domain"
)

// Policy 角色定义和站点管理员，启动时加载
type Policy struct {
	roles  map[string]domain.Role
	admins set.Set[int64]
}

func NewPolicy(roles []domain.Role, admins []int64) *Policy {
	p := &Policy{
		roles:  make(map[string]domain.Role, len(roles)),
		admins: set.NewMapSet[int64](len(admins)),
	}
	for _, r := range roles {
		p.roles[r.Name] = r
	}
	for _, uid := range admins {
		p.admins.Add(uid)
	}
	return p
}

func DefaultRoles() []domain.Role {
	return []domain.Role{
		{Name: "manager", Capabilities: []string{"*"}},
		{
			Name: "editingteacher",
			Capabilities: []string{
				"moodle/course:manageactivities",
				"moodle/question:*",
				"mod/qbank:*",
				"mod/quiz:*",
			},
		},
		{
			Name: "teacher",
			Capabilities: []string{
				"moodle/question:viewall",
				"moodle/question:useall",
				"mod/qbank:view",
				"mod/quiz:view",
			},
		},
		{
			Name:         "student",
			Capabilities: []string{"mod/quiz:attempt", "mod/quiz:view"},
		},
	}
}

func (p *Policy) IsAdmin(uid int64) bool {
	return p.admins.Exist(uid)
}

// Any 任意一个角色拥有任意一项能力
func (p *Policy) Any(roles []string, capabilities []string) bool {
	for _, name := range roles {
		r, ok := p.roles[name]
		if !ok {
			continue
		}
		for _, c := range capabilities {
			if r.Allows(c) {
				return true
			}
		}
	}
	return false
}

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

import "strings"

// Actor 发起操作的用户，显式传递给所有需要鉴权的调用
type Actor struct {
	Uid int64
}

// RoleAssignment 用户在某个上下文中被授予的角色，对所有子上下文生效
type RoleAssignment struct {
	Uid       int64
	Role      string
	ContextID int64
}

// Role 能力支持前缀通配，例如 moodle/question:*
type Role struct {
	Name         string   `yaml:"name"`
	Capabilities []string `yaml:"capabilities"`
}

func (r Role) Allows(capability string) bool {
	for _, p := range r.Capabilities {
		if matchCapability(p, capability) {
			return true
		}
	}
	return false
}

func matchCapability(pattern, capability string) bool {
	if pattern == "*" || pattern == capability {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(capability, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

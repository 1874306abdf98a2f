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

// SiteID 站点本身也是一门课程，固定为 1
const SiteID int64 = 1

type GroupMode uint8

const (
	NoGroups GroupMode = iota
	SeparateGroups
	VisibleGroups
)

type Course struct {
	ID                int64
	Category          int64
	ShortName         string
	FullName          string
	GroupMode         GroupMode
	DefaultGroupingID int64
	Utime             int64
}

func (c Course) IsSite() bool {
	return c.ID == SiteID
}

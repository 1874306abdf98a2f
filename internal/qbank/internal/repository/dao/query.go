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

package dao

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const previewSubtype = "preview"

// bankQueryBuilder 把 BankQuery 转成 gorm 的 clause
// 每个插件一个 LEFT JOIN，至少有一个插件表命中的活动才是题库
type bankQueryBuilder struct {
	q       BankQuery
	dialect string
}

func newBankQueryBuilder(q BankQuery, dialect string) bankQueryBuilder {
	return bankQueryBuilder{q: q, dialect: dialect}
}

func col(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

func (b bankQueryBuilder) pluginAlias(i int) string {
	return fmt.Sprintf("p%d", i)
}

func (b bankQueryBuilder) selectClause() clause.Select {
	cols := []clause.Column{
		col("cm", "id"),
		col("cm", "course"),
		col("cm", "module"),
		col("cm", "instance"),
		col("cm", "section"),
		col("cm", "idnumber"),
		col("cm", "visible"),
		col("cm", "visibleoncoursepage"),
		col("cm", "groupmode"),
		col("cm", "groupingid"),
		col("cm", "showdescription"),
		col("cm", "downloadcontent"),
		col("cm", "deletioninprogress"),
		{Table: "m", Name: "name", Alias: "mod_name"},
		{Table: "cs", Name: "section", Alias: "section_num"},
		{Table: "ctx", Name: "id", Alias: "context_id"},
		{Table: "crs", Name: "shortname", Alias: "course_short_name"},
		{Name: b.nameExpr(), Alias: "name", Raw: true},
	}
	if b.q.WithCategories {
		cols = append(cols, clause.Column{Name: b.catsExpr(), Alias: "cats", Raw: true})
	}
	return clause.Select{Columns: cols}
}

// nameExpr 活动的名字在各自插件的实例表中
func (b bankQueryBuilder) nameExpr() string {
	names := make([]string, 0, len(b.q.Plugins))
	for i := range b.q.Plugins {
		names = append(names, b.pluginAlias(i)+".name")
	}
	if len(names) == 1 {
		return names[0]
	}
	return "COALESCE(" + strings.Join(names, ", ") + ")"
}

// catsExpr 分类聚合成 id<->name<->contextid，多个分类用逗号分隔
func (b bankQueryBuilder) catsExpr() string {
	concat := "CONCAT(qc.id, '<->', qc.name, '<->', qc.contextid)"
	switch b.dialect {
	case "mysql":
		return "GROUP_CONCAT(" + concat + " SEPARATOR ',')"
	case "sqlite":
		return "GROUP_CONCAT(qc.id || '<->' || qc.name || '<->' || qc.contextid, ',')"
	default:
		return "STRING_AGG(" + concat + ", ',')"
	}
}

func (b bankQueryBuilder) fromClause() clause.From {
	joins := []clause.Join{
		{
			Type:  clause.InnerJoin,
			Table: clause.Table{Name: "modules", Alias: "m"},
			ON:    clause.Where{Exprs: []clause.Expression{clause.Eq{Column: col("m", "id"), Value: col("cm", "module")}}},
		},
		{
			Type:  clause.LeftJoin,
			Table: clause.Table{Name: "course_sections", Alias: "cs"},
			ON:    clause.Where{Exprs: []clause.Expression{clause.Eq{Column: col("cs", "id"), Value: col("cm", "section")}}},
		},
		{
			Type:  clause.InnerJoin,
			Table: clause.Table{Name: "contexts", Alias: "ctx"},
			ON: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: col("ctx", "instanceid"), Value: col("cm", "id")},
				clause.Eq{Column: col("ctx", "contextlevel"), Value: contextLevelModule},
			}},
		},
		{
			Type:  clause.InnerJoin,
			Table: clause.Table{Name: "courses", Alias: "crs"},
			ON:    clause.Where{Exprs: []clause.Expression{clause.Eq{Column: col("crs", "id"), Value: col("cm", "course")}}},
		},
	}
	for i, plugin := range b.q.Plugins {
		alias := b.pluginAlias(i)
		on := []clause.Expression{
			clause.Eq{Column: col(alias, "id"), Value: col("cm", "instance")},
			clause.Eq{Column: col("m", "name"), Value: plugin},
		}
		if plugin == "qbank" {
			on = append(on, clause.Neq{Column: col(alias, "type"), Value: previewSubtype})
		}
		joins = append(joins, clause.Join{
			Type:  clause.LeftJoin,
			Table: clause.Table{Name: plugin, Alias: alias},
			ON:    clause.Where{Exprs: on},
		})
	}
	if b.q.WithCategories {
		joins = append(joins, clause.Join{
			Type:  clause.InnerJoin,
			Table: clause.Table{Name: "question_categories", Alias: "qc"},
			ON: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: col("qc", "contextid"), Value: col("ctx", "id")},
				clause.Neq{Column: col("qc", "parent"), Value: 0},
			}},
		})
	}
	return clause.From{
		Tables: []clause.Table{{Name: "course_modules", Alias: "cm"}},
		Joins:  joins,
	}
}

func (b bankQueryBuilder) whereClause() clause.Where {
	hits := make([]clause.Expression, 0, len(b.q.Plugins))
	for i := range b.q.Plugins {
		hits = append(hits, clause.Neq{Column: col(b.pluginAlias(i), "id"), Value: nil})
	}
	exprs := []clause.Expression{
		anyOf(hits),
		clause.Eq{Column: col("cm", "deletioninprogress"), Value: false},
	}
	if len(b.q.NotInCourseIDs) > 0 {
		exprs = append(exprs, clause.Not(clause.IN{Column: col("cm", "course"), Values: toValues(b.q.NotInCourseIDs)}))
	}
	if len(b.q.InCourseIDs) > 0 {
		exprs = append(exprs, clause.IN{Column: col("cm", "course"), Values: toValues(b.q.InCourseIDs)})
	}
	if len(b.q.CMIDs) > 0 {
		exprs = append(exprs, clause.IN{Column: col("cm", "id"), Values: toValues(b.q.CMIDs)})
	}
	return clause.Where{Exprs: exprs}
}

// groupByClause 只有聚合分类的时候才需要
func (b bankQueryBuilder) groupByClause() clause.GroupBy {
	cols := []clause.Column{
		col("cm", "id"),
		col("cm", "course"),
		col("cm", "module"),
		col("cm", "instance"),
		col("cm", "section"),
		col("cm", "idnumber"),
		col("cm", "visible"),
		col("cm", "visibleoncoursepage"),
		col("cm", "groupmode"),
		col("cm", "groupingid"),
		col("cm", "showdescription"),
		col("cm", "downloadcontent"),
		col("cm", "deletioninprogress"),
		col("m", "name"),
		col("cs", "section"),
		col("ctx", "id"),
		col("crs", "shortname"),
	}
	for i := range b.q.Plugins {
		cols = append(cols, col(b.pluginAlias(i), "name"))
	}
	return clause.GroupBy{Columns: cols}
}

// orderByClause 当前选中的题库排在最前面，其余按照 ID 倒序
func (b bankQueryBuilder) orderByClause() (clause.OrderBy, bool) {
	if b.q.CurrentBankID == 0 {
		return clause.OrderBy{}, false
	}
	return clause.OrderBy{Expression: clause.Expr{
		SQL:  "CASE WHEN cm.id = ? THEN 0 ELSE 1 END ASC, cm.id DESC",
		Vars: []any{b.q.CurrentBankID},
	}}, true
}

func (b bankQueryBuilder) Build(db *gorm.DB) *gorm.DB {
	exprs := []clause.Expression{b.selectClause(), b.fromClause(), b.whereClause()}
	if b.q.WithCategories {
		exprs = append(exprs, b.groupByClause())
	}
	if orderBy, ok := b.orderByClause(); ok {
		exprs = append(exprs, orderBy)
	}
	return db.Table("course_modules AS cm").Clauses(exprs...)
}

// anyOf 单个条件直接使用，多个条件用 OR 连接并加上括号
func anyOf(exprs []clause.Expression) clause.Expression {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return clause.Or(exprs...)
}

func toValues(ids []int64) []any {
	return slice.Map(ids, func(idx int, src int64) any {
		return src
	})
}

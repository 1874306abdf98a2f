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

package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一次数据库操作创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return NewGormTracingPluginWithTracer(otel.GetTracerProvider().Tracer(instrumentationName))
}

func NewGormTracingPluginWithTracer(tracer trace.Tracer) *GormTracingPlugin {
	return &GormTracingPlugin{tracer: tracer}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type gormCallback interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		op        string
		processor func() (before, after gormCallback)
	}{
		{op: "query", processor: func() (gormCallback, gormCallback) {
			return cb.Query().Before("gorm:query"), cb.Query().After("gorm:query")
		}},
		{op: "create", processor: func() (gormCallback, gormCallback) {
			return cb.Create().Before("gorm:create"), cb.Create().After("gorm:create")
		}},
		{op: "update", processor: func() (gormCallback, gormCallback) {
			return cb.Update().Before("gorm:update"), cb.Update().After("gorm:update")
		}},
		{op: "delete", processor: func() (gormCallback, gormCallback) {
			return cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete")
		}},
		{op: "row", processor: func() (gormCallback, gormCallback) {
			return cb.Row().Before("gorm:row"), cb.Row().After("gorm:row")
		}},
		{op: "raw", processor: func() (gormCallback, gormCallback) {
			return cb.Raw().Before("gorm:raw"), cb.Raw().After("gorm:raw")
		}},
	}
	for _, o := range ops {
		before, after := o.processor()
		if err := before.Register("tracing:before_"+o.op, p.before(o.op)); err != nil {
			return fmt.Errorf("注册 %s 追踪失败: %w", o.op, err)
		}
		if err := after.Register("tracing:after_"+o.op, p.after); err != nil {
			return fmt.Errorf("注册 %s 追踪失败: %w", o.op, err)
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.statement", db.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	span.SetAttributes(attrs...)
	// 查不到数据不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

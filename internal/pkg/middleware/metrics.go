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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计每个路由的响应时间和请求数量
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	activeReqs prometheus.Gauge
}

// NewMetricsBuilder server 用于区分 web 和 admin，重复注册同名指标会 panic
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	b := &MetricsBuilder{
		summaryVec: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:   "lms",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		}, []string{"method", "path", "status_code"}),
		counterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "lms",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status_code"}),
		activeReqs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "lms",
			Name:        "http_active_requests",
			Help:        "Number of HTTP requests in flight",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(b.summaryVec, b.counterVec, b.activeReqs)
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.activeReqs.Inc()
		defer b.activeReqs.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 未匹配的路由统一归类，避免标签爆炸
			path = "unknown"
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		b.summaryVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}

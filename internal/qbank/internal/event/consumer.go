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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CourseEventConsumer 新建课程的时候创建系统题库
type CourseEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCourseEventConsumer(svc service.Service, q mq.MQ) (*CourseEventConsumer, error) {
	groupID := "qbank-course"
	consumer, err := q.Consumer(course.CourseEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &CourseEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *CourseEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费课程事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *CourseEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt course.CourseEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}
	// 站点课程只有预览题库
	if evt.Action != course.CourseActionCreated || evt.CourseID == course.SiteID {
		return nil
	}
	_, err = c.svc.SystemBank(ctx, evt.CourseID, true)
	if err != nil {
		return fmt.Errorf("创建课程 %d 的系统题库失败: %w", evt.CourseID, err)
	}
	return nil
}

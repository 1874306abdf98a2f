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

	"github.com/ecodeclub/lms/internal/permission/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type RoleAssignmentEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRoleAssignmentEventConsumer(svc service.Service, q mq.MQ) (*RoleAssignmentEventConsumer, error) {
	groupID := "permission-role-assignment"
	consumer, err := q.Consumer(RoleAssignmentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RoleAssignmentEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RoleAssignmentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费角色分配事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RoleAssignmentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt RoleAssignmentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	switch evt.Action {
	case ActionAssign:
		return c.svc.Assign(ctx, evt.toDomain())
	case ActionUnassign:
		for _, ra := range evt.toDomain() {
			if err = c.svc.Unassign(ctx, ra); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("未知的角色分配动作: %s", evt.Action)
	}
}

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
	"errors"
	"testing"

	"github.com/ecodeclub/lms/internal/permission/internal/domain"
	"github.com/ecodeclub/lms/internal/permission/internal/service"
	permissionmocks "github.com/ecodeclub/lms/internal/permission/mocks"
	"github.com/ecodeclub/lms/internal/test/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoleAssignmentEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     RoleAssignmentEvent
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "分配角色",
			evt: RoleAssignmentEvent{
				Uid: 10, Role: "editingteacher", ContextIDs: []int64{3, 4}, Action: ActionAssign,
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := permissionmocks.NewMockService(ctrl)
				svc.EXPECT().Assign(gomock.Any(), []domain.RoleAssignment{
					{Uid: 10, Role: "editingteacher", ContextID: 3},
					{Uid: 10, Role: "editingteacher", ContextID: 4},
				}).Return(nil)
				return svc
			},
		},
		{
			name: "撤销角色",
			evt: RoleAssignmentEvent{
				Uid: 10, Role: "student", ContextIDs: []int64{3, 4}, Action: ActionUnassign,
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := permissionmocks.NewMockService(ctrl)
				svc.EXPECT().Unassign(gomock.Any(), domain.RoleAssignment{Uid: 10, Role: "student", ContextID: 3}).Return(nil)
				svc.EXPECT().Unassign(gomock.Any(), domain.RoleAssignment{Uid: 10, Role: "student", ContextID: 4}).
					Return(errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			val, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			consumer := mocks.NewMockConsumer(ctrl)
			consumer.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: val}, nil)
			q := mocks.NewMockMQ(ctrl)
			q.EXPECT().Consumer(RoleAssignmentEventName, gomock.Any()).Return(consumer, nil)

			c, err := NewRoleAssignmentEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			err = c.Consume(context.Background())
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestRoleAssignmentEventConsumer_UnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	val, err := json.Marshal(RoleAssignmentEvent{Uid: 1, Action: "grant"})
	require.NoError(t, err)
	consumer := mocks.NewMockConsumer(ctrl)
	consumer.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: val}, nil)
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Consumer(RoleAssignmentEventName, gomock.Any()).Return(consumer, nil)
	c, err := NewRoleAssignmentEventConsumer(permissionmocks.NewMockService(ctrl), q)
	require.NoError(t, err)
	assert.Error(t, c.Consume(context.Background()))
}

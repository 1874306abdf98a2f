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

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	qbankmocks "github.com/ecodeclub/lms/internal/qbank/mocks"
	"github.com/ecodeclub/lms/internal/test/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCourseEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     course.CourseEvent
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "新建课程",
			evt:  course.CourseEvent{CourseID: 3, FullName: "Go", Action: course.CourseActionCreated},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := qbankmocks.NewMockService(ctrl)
				svc.EXPECT().SystemBank(gomock.Any(), int64(3), true).
					Return(course.CourseModule{ID: 7}, nil)
				return svc
			},
		},
		{
			name: "更新课程",
			evt:  course.CourseEvent{CourseID: 3, Action: "updated"},
			mock: func(ctrl *gomock.Controller) service.Service {
				return qbankmocks.NewMockService(ctrl)
			},
		},
		{
			name: "站点课程",
			evt:  course.CourseEvent{CourseID: course.SiteID, Action: course.CourseActionCreated},
			mock: func(ctrl *gomock.Controller) service.Service {
				return qbankmocks.NewMockService(ctrl)
			},
		},
		{
			name: "创建失败",
			evt:  course.CourseEvent{CourseID: 4, Action: course.CourseActionCreated},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := qbankmocks.NewMockService(ctrl)
				svc.EXPECT().SystemBank(gomock.Any(), int64(4), true).
					Return(course.CourseModule{}, errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("创建课程 4 的系统题库失败: mock db error"),
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
			q.EXPECT().Consumer(course.CourseEventName, gomock.Any()).Return(consumer, nil)

			c, err := NewCourseEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			err = c.Consume(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

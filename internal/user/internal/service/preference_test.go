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
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/lms/internal/user/internal/domain"
	"github.com/ecodeclub/lms/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/lms/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPreferenceService_GetPreference(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.PreferenceRepository

		wantVal string
		wantErr error
	}{
		{
			name: "已设置",
			mock: func(ctrl *gomock.Controller) repository.PreferenceRepository {
				repo := repomocks.NewMockPreferenceRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), "recently_viewed_open_banks").
					Return(domain.Preference{Uid: 1, Name: "recently_viewed_open_banks", Value: "3,4"}, nil)
				return repo
			},
			wantVal: "3,4",
		},
		{
			name: "未设置返回默认值",
			mock: func(ctrl *gomock.Controller) repository.PreferenceRepository {
				repo := repomocks.NewMockPreferenceRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), "recently_viewed_open_banks").
					Return(domain.Preference{}, repository.ErrPreferenceNotFound)
				return repo
			},
			wantVal: "default",
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.PreferenceRepository {
				repo := repomocks.NewMockPreferenceRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), int64(1), "recently_viewed_open_banks").
					Return(domain.Preference{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewPreferenceService(tc.mock(ctrl))
			val, err := svc.GetPreference(context.Background(), 1, "recently_viewed_open_banks", "default")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantVal, val)
		})
	}
}

func TestPreferenceService_SetPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), domain.Preference{Uid: 2, Name: "a", Value: "b"}).Return(nil)
	svc := NewPreferenceService(repo)
	assert.NoError(t, svc.SetPreference(context.Background(), 2, "a", "b"))

	long := strings.Repeat("题", domain.MaxPreferenceValueLen+1)
	assert.ErrorIs(t, svc.SetPreference(context.Background(), 2, "a", long), ErrPreferenceValueTooLong)
}

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
	"unicode/utf8"

	"github.com/ecodeclub/lms/internal/user/internal/domain"
	"github.com/ecodeclub/lms/internal/user/internal/repository"
)

var ErrPreferenceValueTooLong = errors.New("偏好值过长")

//go:generate mockgen -source=./preference.go -package=usermocks -destination=../../mocks/preference.mock.go PreferenceService
type PreferenceService interface {
	// GetPreference 没有设置过的时候返回 defaultValue
	GetPreference(ctx context.Context, uid int64, name string, defaultValue string) (string, error)
	SetPreference(ctx context.Context, uid int64, name string, value string) error
	UnsetPreference(ctx context.Context, uid int64, name string) error
}

type preferenceService struct {
	repo repository.PreferenceRepository
}

func NewPreferenceService(repo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{
		repo: repo,
	}
}

func (s *preferenceService) GetPreference(ctx context.Context, uid int64, name string, defaultValue string) (string, error) {
	p, err := s.repo.Get(ctx, uid, name)
	switch {
	case errors.Is(err, repository.ErrPreferenceNotFound):
		return defaultValue, nil
	case err != nil:
		return "", err
	default:
		return p.Value, nil
	}
}

func (s *preferenceService) SetPreference(ctx context.Context, uid int64, name string, value string) error {
	if utf8.RuneCountInString(value) > domain.MaxPreferenceValueLen {
		return ErrPreferenceValueTooLong
	}
	return s.repo.Save(ctx, domain.Preference{
		Uid:   uid,
		Name:  name,
		Value: value,
	})
}

func (s *preferenceService) UnsetPreference(ctx context.Context, uid int64, name string) error {
	return s.repo.Delete(ctx, uid, name)
}

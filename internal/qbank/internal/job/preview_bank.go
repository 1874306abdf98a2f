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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*EnsurePreviewBankJob)(nil)

// EnsurePreviewBankJob 站点的预览题库被删除后重新创建
type EnsurePreviewBankJob struct {
	svc service.Service
}

func NewEnsurePreviewBankJob(svc service.Service) *EnsurePreviewBankJob {
	return &EnsurePreviewBankJob{svc: svc}
}

func (j *EnsurePreviewBankJob) Name() string {
	return "EnsurePreviewBankJob"
}

func (j *EnsurePreviewBankJob) Run(ctx context.Context) error {
	_, err := j.svc.PreviewBank(ctx, true)
	if err != nil {
		return fmt.Errorf("创建预览题库失败: %w", err)
	}
	return nil
}

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

package web

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank/internal/modal"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
)

// fragmentLoader 进程内加载片段，和 /quiz/fragment 接口共用同一个渲染器
type fragmentLoader struct {
	renderer *service.FragmentRenderer
	actor    permission.Actor
}

func newFragmentLoader(renderer *service.FragmentRenderer, actor permission.Actor) modal.FragmentLoader {
	return &fragmentLoader{renderer: renderer, actor: actor}
}

func (l *fragmentLoader) LoadFragment(ctx context.Context, component, callback string,
	contextID int64, params map[string]string) (string, error) {
	if component != modal.FragmentComponent || callback != modal.FragmentCallback {
		return "", fmt.Errorf("未知的片段 %s/%s", component, callback)
	}
	quizCMID, err := strconv.ParseInt(params["quizcmid"], 10, 64)
	if err != nil {
		return "", fmt.Errorf("quizcmid 参数错误: %w", err)
	}
	bankModID, err := strconv.ParseInt(params["bankmodid"], 10, 64)
	if err != nil {
		return "", fmt.Errorf("bankmodid 参数错误: %w", err)
	}
	return l.renderer.SwitchQuestionBank(ctx, l.actor, contextID, quizCMID, bankModID)
}

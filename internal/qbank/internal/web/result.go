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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/qbank/internal/errs"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errorResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

// toResult 业务错误不需要 ginx 再记录日志
func toResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidSubtype):
		return errorResult(errs.InvalidSubtype), nil
	case errors.Is(err, service.ErrInvalidPluginType):
		return errorResult(errs.InvalidPluginType), nil
	case errors.Is(err, service.ErrPermissionDenied):
		return errorResult(errs.PermissionDenied), nil
	case errors.Is(err, service.ErrModuleDisabled):
		return errorResult(errs.ModuleDisabled), nil
	case errors.Is(err, service.ErrInvalidContextLevel):
		return errorResult(errs.InvalidContextLevel), nil
	case errors.Is(err, service.ErrBankNotFound), errors.Is(err, course.ErrNotFound):
		return errorResult(errs.BankNotFound), nil
	default:
		return systemErrorResult, err
	}
}

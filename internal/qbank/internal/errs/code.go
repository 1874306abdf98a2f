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

package errs

var (
	SystemError = ErrorCode{Code: 520001, Msg: "系统错误"}

	InvalidSubtype      = ErrorCode{Code: 420001, Msg: "无效的题库类型"}
	PermissionDenied    = ErrorCode{Code: 420002, Msg: "没有权限"}
	ModuleDisabled      = ErrorCode{Code: 420003, Msg: "课程中不允许添加题库"}
	InvalidContextLevel = ErrorCode{Code: 420004, Msg: "题库上下文级别不对"}
	BankNotFound        = ErrorCode{Code: 420005, Msg: "题库不存在"}
	InvalidPluginType   = ErrorCode{Code: 420006, Msg: "无效的插件分类"}
	InvalidCourseID     = ErrorCode{Code: 420007, Msg: "课程 ID 不对"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

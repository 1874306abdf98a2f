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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank"
	"github.com/ecodeclub/lms/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		course.InitModule,
		permission.InitModule,
		user.InitModule,
		navigation.InitModule,
		qbank.InitModule,
		wire.FieldsOf(new(*course.Module), "AdminHdl"),
		wire.FieldsOf(new(*permission.Module), "Svc", "C"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*navigation.Module), "Hdl"),
		wire.FieldsOf(new(*qbank.Module), "Hdl", "C", "PreviewBankJob"),
		initGinxServer,
		InitAdminServer,
		initConsumers,
		initCronJobs,
	)
	return new(App), nil
}

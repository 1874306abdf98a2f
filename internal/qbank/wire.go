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

package qbank

import (
	"sync"

	"github.com/ecodeclub/lms/internal/course"
	"github.com/ecodeclub/lms/internal/navigation"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank/internal/event"
	"github.com/ecodeclub/lms/internal/qbank/internal/job"
	"github.com/ecodeclub/lms/internal/qbank/internal/repository"
	"github.com/ecodeclub/lms/internal/qbank/internal/repository/dao"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	"github.com/ecodeclub/lms/internal/qbank/internal/web"
	"github.com/ecodeclub/lms/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	cm *course.Module,
	pm *permission.Module,
	um *user.Module,
	nm *navigation.Module,
	q mq.MQ) (*Module, error) {
	wire.Build(
		initBankDAO,
		repository.NewBankRepository,
		initPluginTypes,
		initService,
		service.NewFragmentRenderer,
		wire.FieldsOf(new(*course.Module), "Svc"),
		web.NewHandler,
		event.NewCourseEventConsumer,
		job.NewEnsurePreviewBankJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once    = &sync.Once{}
	bankDAO dao.BankDAO
)

func initBankDAO(db *egorm.Component) dao.BankDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		bankDAO = dao.NewGORMBankDAO(db)
	})
	return bankDAO
}

func initPluginTypes(cm *course.Module) *service.PluginTypes {
	return service.NewPluginTypes(cm.Registry.Plugins())
}

// initService 顺带把面包屑回调注册到导航模块
func initService(repo repository.BankRepository,
	types *service.PluginTypes,
	cm *course.Module,
	pm *permission.Module,
	um *user.Module,
	nm *navigation.Module) service.Service {
	nm.Dispatcher.Register(service.BreadcrumbCallbackName, service.BreadcrumbCallback)
	return service.NewService(repo, types, cm.Svc, pm.Svc, um.Svc)
}

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

package permission

import (
	"sync"

	"github.com/ecodeclub/lms/internal/permission/internal/domain"
	"github.com/ecodeclub/lms/internal/permission/internal/event"
	"github.com/ecodeclub/lms/internal/permission/internal/repository"
	"github.com/ecodeclub/lms/internal/permission/internal/repository/dao"
	"github.com/ecodeclub/lms/internal/permission/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initDAO,
		initPolicy,
		repository.NewRoleAssignmentRepository,
		service.NewPermissionService,
		event.NewRoleAssignmentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once              = &sync.Once{}
	roleAssignmentDAO dao.RoleAssignmentDAO
)

func initDAO(db *egorm.Component) dao.RoleAssignmentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
		roleAssignmentDAO = dao.NewRoleAssignmentGORMDAO(db)
	})
	return roleAssignmentDAO
}

func initPolicy() *service.Policy {
	type Config struct {
		Roles  []domain.Role `yaml:"roles"`
		Admins []int64       `yaml:"admins"`
	}
	var cfg Config
	err := econf.UnmarshalKey("permission", &cfg)
	if err != nil {
		elog.DefaultLogger.Warn("没有权限配置，使用默认角色", elog.FieldErr(err))
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = service.DefaultRoles()
	}
	return service.NewPolicy(cfg.Roles, cfg.Admins)
}

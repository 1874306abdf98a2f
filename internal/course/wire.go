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

package course

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/lms/internal/course/internal/domain"
	"github.com/ecodeclub/lms/internal/course/internal/event"
	"github.com/ecodeclub/lms/internal/course/internal/repository"
	"github.com/ecodeclub/lms/internal/course/internal/repository/cache"
	"github.com/ecodeclub/lms/internal/course/internal/repository/dao"
	"github.com/ecodeclub/lms/internal/course/internal/service"
	"github.com/ecodeclub/lms/internal/course/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initCourseDAO,
		initModuleDAO,
		cache.NewModInfoCache,
		repository.NewCourseRepository,
		repository.NewCachedModuleRepository,
		initPluginRegistry,
		event.NewCourseEventProducer,
		service.NewService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initTables(db *egorm.Component) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initCourseDAO(db *egorm.Component) dao.CourseDAO {
	initTables(db)
	return dao.NewGORMCourseDAO(db)
}

func initModuleDAO(db *egorm.Component) dao.ModuleDAO {
	initTables(db)
	return dao.NewGORMModuleDAO(db)
}

func initPluginRegistry(repo repository.ModuleRepository) *service.PluginRegistry {
	var plugins []domain.Plugin
	err := econf.UnmarshalKey("course.plugins", &plugins)
	if err != nil || len(plugins) == 0 {
		plugins = service.DefaultPlugins()
	}
	registry := service.NewPluginRegistry(plugins)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = repo.EnsureModules(ctx, registry.Names())
	if err != nil {
		panic(err)
	}
	return registry
}

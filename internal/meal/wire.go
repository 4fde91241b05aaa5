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

package meal

import (
	"sync"

	"github.com/ecodeclub/mealhub/internal/meal/internal/repository"
	"github.com/ecodeclub/mealhub/internal/meal/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/meal/internal/service"
	"github.com/ecodeclub/mealhub/internal/meal/internal/web"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	InitTablesOnce,
	repository.NewMealRepository,
	service.NewService,
	web.NewHandler)

func InitModule(db *egorm.Component, orgModule *organization.Module) *Module {
	wire.Build(HandlerSet,
		wire.FieldsOf(new(*organization.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.MealDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMealGORMDAO(db)
}

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

package statistics

import (
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/repository"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/service"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	dao.NewStatisticsGORMDAO,
	repository.NewStatisticsRepository,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
)

// InitModule 订单和餐品的表由各自的模块初始化，这里只读
func InitModule(db *egorm.Component, mealModule *meal.Module, orgModule *organization.Module) *Module {
	wire.Build(HandlerSet,
		wire.FieldsOf(new(*meal.Module), "Svc"),
		wire.FieldsOf(new(*organization.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

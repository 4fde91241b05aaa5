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

package order

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/consumer"
	"github.com/ecodeclub/mealhub/internal/order/internal/event"
	"github.com/ecodeclub/mealhub/internal/order/internal/job"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository/cache"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/ecodeclub/mealhub/internal/order/internal/web"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/ecodeclub/mealhub/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var HandlerSet = wire.NewSet(
	InitTablesOnce,
	repository.NewOrderRepository,
	cache.NewRequestECache,
	sequencenumber.NewGenerator,
	service.NewInventoryGate,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	mealModule *meal.Module,
	orgModule *organization.Module,
	userModule *user.Module,
	paymentModule *payment.Module) (*Module, error) {
	wire.Build(HandlerSet,
		initProducer,
		initPaymentConsumer,
		initReconcileConfig,
		job.NewReconcilePaymentsJob,
		wire.FieldsOf(new(*meal.Module), "Svc"),
		wire.FieldsOf(new(*organization.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}

func initProducer(q mq.MQ) (mqx.Producer[event.OrderEvent], error) {
	return mqx.NewGeneralProducer[event.OrderEvent](q, event.TopicOrderEvents, mqx.WithKey(func(evt event.OrderEvent) string {
		return evt.OrderSN
	}))
}

func initPaymentConsumer(svc service.Service, q mq.MQ) (*consumer.PaymentConsumer, error) {
	c, err := consumer.NewPaymentConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}

func initReconcileConfig() job.ReconcileConfig {
	var cfg job.ReconcileConfig
	err := econf.UnmarshalKey("order.reconcile", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

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

package payment

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mealhub/internal/payment/internal/event"
	"github.com/ecodeclub/mealhub/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/mealhub/internal/payment/internal/service"
	"github.com/ecodeclub/mealhub/internal/payment/internal/web"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initConfig,
		service.NewRestyClient,
		cache.NewTokenECache,
		service.NewShurjoPayService,
		initProducer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("payment.shurjopay", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "BDT"
	}
	return cfg
}

func initProducer(q mq.MQ) (mqx.Producer[event.PaymentEvent], error) {
	return mqx.NewGeneralProducer[event.PaymentEvent](q, event.TopicPaymentEvents,
		mqx.WithKey(func(evt event.PaymentEvent) string {
			return evt.GatewayOrderID
		}))
}

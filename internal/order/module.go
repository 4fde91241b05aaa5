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

package order

import (
	"github.com/ecodeclub/mealhub/internal/order/internal/consumer"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/event"
	"github.com/ecodeclub/mealhub/internal/order/internal/job"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/ecodeclub/mealhub/internal/order/internal/web"
)

var ErrOrderNotFound = service.ErrOrderNotFound

// 统计的时候用这几个列表补齐没有数据的状态
var (
	PaymentStatuses  = domain.PaymentStatuses
	ShippingStatuses = domain.ShippingStatuses
	ItemStatuses     = domain.ItemStatuses
)

const (
	TopicOrderEvents         = event.TopicOrderEvents
	TypeOrderCreated         = event.TypeOrderCreated
	TypePaymentStatusChanged = event.TypePaymentStatusChanged

	PaymentStatusPaid = domain.PaymentStatusPaid
)

type (
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	Service              = service.Service
	Order                = domain.Order
	LineItem             = domain.LineItem
	PaymentStatus        = domain.PaymentStatus
	ShippingStatus       = domain.ShippingStatus
	ItemStatus           = domain.ItemStatus
	OrderEvent           = event.OrderEvent
	ReconcilePaymentsJob = job.ReconcilePaymentsJob
	ReconcileConfig      = job.ReconcileConfig
	PaymentConsumer      = consumer.PaymentConsumer
)

type Module struct {
	Hdl             *Handler
	AdminHdl        *AdminHandler
	Svc             Service
	ReconcileJob    *ReconcilePaymentsJob
	PaymentConsumer *PaymentConsumer
}

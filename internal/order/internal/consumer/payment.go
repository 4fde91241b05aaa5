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

package consumer

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const groupID = "order"

// PaymentConsumer 收到网关回调之后去网关确认支付结果
type PaymentConsumer struct {
	*mqx.GeneralConsumer[payment.PaymentEvent]
	svc    service.Service
	logger *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	c := &PaymentConsumer{svc: svc, logger: elog.DefaultLogger}
	gc, err := mqx.NewGeneralConsumer[payment.PaymentEvent](q, payment.TopicPaymentEvents, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.GeneralConsumer = gc
	return c, nil
}

func (c *PaymentConsumer) Handle(ctx context.Context, evt payment.PaymentEvent) error {
	txnID := strings.TrimSpace(evt.GatewayOrderID)
	if txnID == "" {
		return mqx.ErrSkip
	}
	_, err := c.svc.VerifyPayment(ctx, txnID)
	if errors.Is(err, service.ErrOrderNotFound) {
		// 回调里的订单号不是我们的，重试也没用
		c.logger.Warn("支付回调找不到订单", elog.String("txnId", txnID))
		return mqx.ErrSkip
	}
	return err
}

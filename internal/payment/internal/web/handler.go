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

package web

import (
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mealhub/internal/payment/internal/event"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	producer mqx.Producer[event.PaymentEvent]
	logger   *elog.Component
}

func NewHandler(producer mqx.Producer[event.PaymentEvent]) *Handler {
	return &Handler{
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 网关支付完成后跳转和异步通知都走这里
	server.Any("/payment/callback", ginx.B[CallbackReq](h.Callback))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// Callback 回调里面的参数不可信，只负责转发网关订单号，最终状态由订单模块去网关确认
func (h *Handler) Callback(ctx *ginx.Context, req CallbackReq) (ginx.Result, error) {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return invalidParamResult, nil
	}
	err := h.producer.Produce(ctx.Request.Context(), event.PaymentEvent{GatewayOrderID: orderID})
	if err != nil {
		h.logger.Error("发送支付事件失败",
			elog.String("gatewayOrderId", orderID),
			elog.FieldErr(err))
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

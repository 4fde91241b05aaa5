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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/mealhub/internal/payment/internal/event"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Callback(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.TopicPaymentEvents, 1))
	consumer, err := q.Consumer(event.TopicPaymentEvents, "test")
	require.NoError(t, err)
	producer, err := mqx.NewGeneralProducer[event.PaymentEvent](q, event.TopicPaymentEvents)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(producer).PublicRoutes(server)

	testCases := []struct {
		name     string
		method   string
		url      string
		wantCode int
		wantEvt  *event.PaymentEvent
	}{
		{
			name:    "跳转回调",
			method:  http.MethodGet,
			url:     "/payment/callback?order_id=sp-1",
			wantEvt: &event.PaymentEvent{GatewayOrderID: "sp-1"},
		},
		{
			name:    "异步通知",
			method:  http.MethodPost,
			url:     "/payment/callback?order_id=sp-2",
			wantEvt: &event.PaymentEvent{GatewayOrderID: "sp-2"},
		},
		{
			name:     "缺少订单号",
			method:   http.MethodGet,
			url:      "/payment/callback?order_id=%20",
			wantCode: 404004,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.url, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)

			var res struct {
				Code int    `json:"code"`
				Msg  string `json:"msg"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantEvt == nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			msg, err := consumer.Consume(ctx)
			require.NoError(t, err)
			var evt event.PaymentEvent
			require.NoError(t, json.Unmarshal(msg.Value, &evt))
			assert.Equal(t, *tc.wantEvt, evt)
		})
	}
}

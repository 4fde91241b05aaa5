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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/mealhub/internal/payment/internal/domain"
	"github.com/ecodeclub/mealhub/internal/payment/internal/repository/cache"
	cachemocks "github.com/ecodeclub/mealhub/internal/payment/internal/repository/cache/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testToken = domain.Token{Value: "tk", Type: "Bearer", StoreID: 1}

type fakeGateway struct {
	tokenCalls int
	// 收到的 secret-pay 请求体
	payBody map[string]any

	payStatus    int
	payResp      string
	verifyStatus int
	verifyResp   string
}

func (g *fakeGateway) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/get_token", func(w http.ResponseWriter, r *http.Request) {
		g.tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tk","store_id":1,"token_type":"Bearer","sp_code":"200","massage":"Ok","expires_in":3600}`))
	})
	mux.HandleFunc("/api/secret-pay", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tk" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&g.payBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.payStatus)
		_, _ = w.Write([]byte(g.payResp))
	})
	mux.HandleFunc("/api/verification", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.verifyStatus)
		_, _ = w.Write([]byte(g.verifyResp))
	})
	return mux
}

func newTestService(t *testing.T, srv *httptest.Server, c cache.TokenCache) Service {
	cfg := Config{
		Endpoint:     srv.URL + "/",
		Username:     "sp",
		Password:     "pwd",
		Prefix:       "MH",
		ReturnURL:    "http://localhost/payment/callback",
		CancelURL:    "http://localhost/payment/callback",
		Currency:     "BDT",
		DefaultPhone: "01384837384",
		Timeout:      time.Second,
	}
	return NewShurjoPayService(NewRestyClient(cfg), c, cfg)
}

func TestShurjoPayService_Initiate(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) cache.TokenCache
		gateway *fakeGateway
		req     domain.InitiateRequest

		wantRes        domain.InitiateResult
		wantErr        error
		wantTokenCalls int
		wantBody       map[string]any
	}{
		{
			name: "缓存里面有 token",
			mock: func(ctrl *gomock.Controller) cache.TokenCache {
				c := cachemocks.NewMockTokenCache(ctrl)
				c.EXPECT().Get(gomock.Any()).Return(testToken, nil)
				return c
			},
			gateway: &fakeGateway{
				payStatus: http.StatusOK,
				payResp:   `{"checkout_url":"https://pay/sp-1","sp_order_id":"sp-1","transactionStatus":"Initiated"}`,
			},
			req: domain.InitiateRequest{
				Amount:        decimal.RequireFromString("35.2"),
				OrderID:       "sn-1",
				CustomerName:  "Alice",
				CustomerEmail: "alice@x.com",
				ClientIP:      "127.0.0.1",
			},
			wantRes: domain.InitiateResult{
				CheckoutURL:       "https://pay/sp-1",
				GatewayOrderID:    "sp-1",
				TransactionStatus: "Initiated",
			},
			wantBody: map[string]any{
				"amount":           35.2,
				"order_id":         "sn-1",
				"currency":         "BDT",
				"customer_address": "Bangladesh",
				"customer_city":    "Dhaka",
				"customer_phone":   "01384837384",
			},
		},
		{
			name: "缓存没有 token 重新申请",
			mock: func(ctrl *gomock.Controller) cache.TokenCache {
				c := cachemocks.NewMockTokenCache(ctrl)
				c.EXPECT().Get(gomock.Any()).Return(domain.Token{}, errors.New("key not found"))
				c.EXPECT().Set(gomock.Any(), testToken, 59*time.Minute).Return(nil)
				return c
			},
			gateway: &fakeGateway{
				payStatus: http.StatusOK,
				payResp:   `{"checkout_url":"https://pay/sp-2","sp_order_id":"sp-2","transactionStatus":"Initiated"}`,
			},
			req: domain.InitiateRequest{
				Amount:          decimal.NewFromInt(11),
				OrderID:         "sn-2",
				CustomerAddress: "Road 1",
				CustomerCity:    "Sylhet",
				CustomerPhone:   "017",
			},
			wantRes: domain.InitiateResult{
				CheckoutURL:       "https://pay/sp-2",
				GatewayOrderID:    "sp-2",
				TransactionStatus: "Initiated",
			},
			wantTokenCalls: 1,
			wantBody: map[string]any{
				"customer_address": "Road 1",
				"customer_city":    "Sylhet",
				"customer_phone":   "017",
			},
		},
		{
			name: "token 失效",
			mock: func(ctrl *gomock.Controller) cache.TokenCache {
				c := cachemocks.NewMockTokenCache(ctrl)
				c.EXPECT().Get(gomock.Any()).Return(domain.Token{Value: "old", Type: "Bearer"}, nil)
				c.EXPECT().Delete(gomock.Any()).Return(nil)
				return c
			},
			gateway: &fakeGateway{},
			wantErr: ErrUpstreamFailure,
		},
		{
			name: "网关返回 5xx",
			mock: func(ctrl *gomock.Controller) cache.TokenCache {
				c := cachemocks.NewMockTokenCache(ctrl)
				c.EXPECT().Get(gomock.Any()).Return(testToken, nil)
				return c
			},
			gateway: &fakeGateway{payStatus: http.StatusBadGateway},
			wantErr: ErrUpstreamFailure,
		},
		{
			name: "网关返回未知内容",
			mock: func(ctrl *gomock.Controller) cache.TokenCache {
				c := cachemocks.NewMockTokenCache(ctrl)
				c.EXPECT().Get(gomock.Any()).Return(testToken, nil)
				return c
			},
			gateway: &fakeGateway{payStatus: http.StatusOK, payResp: `{"message":"invalid amount"}`},
			wantErr: ErrUpstreamFailure,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			srv := httptest.NewServer(tc.gateway.handler())
			defer srv.Close()

			svc := newTestService(t, srv, tc.mock(ctrl))
			res, err := svc.Initiate(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
			assert.Equal(t, tc.wantTokenCalls, tc.gateway.tokenCalls)
			for k, v := range tc.wantBody {
				assert.Equal(t, v, tc.gateway.payBody[k], k)
			}
		})
	}
}

func TestShurjoPayService_Verify(t *testing.T) {
	testCases := []struct {
		name    string
		gateway *fakeGateway
		wantRes []domain.Verification
		wantErr error
	}{
		{
			name: "支付成功",
			gateway: &fakeGateway{
				verifyStatus: http.StatusOK,
				verifyResp: `[{"order_id":"sp-1","customer_order_id":"sn-1","bank_status":"Success","sp_code":"1000",
"sp_message":"Success","transaction_status":"Completed","method":"bKash","date_time":"2025-01-02 10:00:00"}]`,
			},
			wantRes: []domain.Verification{
				{
					GatewayOrderID:    "sp-1",
					CustomerOrderID:   "sn-1",
					BankStatus:        domain.BankStatusSuccess,
					SPCode:            "1000",
					SPMessage:         "Success",
					TransactionStatus: "Completed",
					Method:            "bKash",
					DateTime:          "2025-01-02 10:00:00",
				},
			},
		},
		{
			name: "网关不认识这个订单",
			gateway: &fakeGateway{
				verifyStatus: http.StatusOK,
				verifyResp:   `{"sp_code":"1011","message":"Invalid Order ID"}`,
			},
			wantRes: []domain.Verification{},
		},
		{
			name: "网关返回空列表",
			gateway: &fakeGateway{
				verifyStatus: http.StatusOK,
				verifyResp:   `[]`,
			},
			wantRes: []domain.Verification{},
		},
		{
			name: "网关返回未知内容",
			gateway: &fakeGateway{
				verifyStatus: http.StatusOK,
				verifyResp:   `<html></html>`,
			},
			wantErr: ErrUpstreamFailure,
		},
		{
			name:    "网关返回 5xx",
			gateway: &fakeGateway{verifyStatus: http.StatusInternalServerError},
			wantErr: ErrUpstreamFailure,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			srv := httptest.NewServer(tc.gateway.handler())
			defer srv.Close()

			c := cachemocks.NewMockTokenCache(ctrl)
			c.EXPECT().Get(gomock.Any()).Return(testToken, nil)
			svc := newTestService(t, srv, c)
			res, err := svc.Verify(context.Background(), "sp-1")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestShurjoPayService_TokenUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sp_code":"1064","massage":"Invalid credentials"}`))
	}))
	defer srv.Close()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockTokenCache(ctrl)
	c.EXPECT().Get(gomock.Any()).Return(domain.Token{}, errors.New("key not found"))

	_, err := newTestService(t, srv, c).Verify(context.Background(), "sp-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

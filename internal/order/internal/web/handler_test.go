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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mealmocks "github.com/ecodeclub/mealhub/internal/meal/mocks"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/errs"
	cachemocks "github.com/ecodeclub/mealhub/internal/order/internal/repository/cache/mocks"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/mealhub/internal/order/mocks"
	orgmocks "github.com/ecodeclub/mealhub/internal/organization/mocks"
	"github.com/ecodeclub/mealhub/internal/test"
	"github.com/ecodeclub/mealhub/internal/user"
	usermocks "github.com/ecodeclub/mealhub/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		body     string
		mock     func(svc *ordermocks.MockService, c *cachemocks.MockRequestCache)
		wantCode int
	}{
		{
			name:  "下单成功",
			email: "rahim@example.com",
			body:  `{"requestId":"r1","products":[{"product":1,"quantity":2}]}`,
			mock: func(svc *ordermocks.MockService, c *cachemocks.MockRequestCache) {
				c.EXPECT().SetNX(gomock.Any(), "r1").Return(true, nil)
				svc.EXPECT().CreateOrder(gomock.Any(), domain.CreateRequest{
					CustomerEmail: "rahim@example.com",
					ClientIP:      "192.0.2.1",
					Items:         []domain.ItemRequest{{MealID: 1, Quantity: 2}},
				}).Return(domain.CreateResult{OrderID: 9, SN: "sn", CheckoutURL: "https://pay"}, nil)
			},
		},
		{
			name:  "重复提交",
			email: "rahim@example.com",
			body:  `{"requestId":"r1","products":[{"product":1,"quantity":2}]}`,
			mock: func(svc *ordermocks.MockService, c *cachemocks.MockRequestCache) {
				c.EXPECT().SetNX(gomock.Any(), "r1").Return(false, nil)
			},
			wantCode: errs.DuplicateRequest.Code,
		},
		{
			name:     "没有邮箱",
			body:     `{"products":[{"product":1,"quantity":2}]}`,
			mock:     func(svc *ordermocks.MockService, c *cachemocks.MockRequestCache) {},
			wantCode: errs.InvalidParam.Code,
		},
		{
			name:  "没有请求 ID 不去重",
			email: "rahim@example.com",
			body:  `{"products":[{"product":1,"quantity":2}]}`,
			mock: func(svc *ordermocks.MockService, c *cachemocks.MockRequestCache) {
				svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(domain.CreateResult{}, service.ErrOutOfStock)
			},
			wantCode: errs.OutOfStock.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			c := cachemocks.NewMockRequestCache(ctrl)
			tc.mock(svc, c)
			hdl := NewHandler(svc, mealmocks.NewMockService(ctrl), orgmocks.NewMockOrganizationService(ctrl),
				usermocks.NewMockUserService(ctrl), c)

			gin.SetMode(gin.TestMode)
			server := gin.New()
			server.Use(test.SessionMiddleware(5, user.RoleCustomer, tc.email))
			hdl.PrivateRoutes(server)

			req := httptest.NewRequest(http.MethodPost, "/order/create", strings.NewReader(tc.body))
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[CreateResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func TestErrorResult(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantErr  bool
		wantCode int
	}{
		{name: "订单不存在", err: service.ErrOrderNotFound, wantCode: errs.OrderNotFound.Code},
		{name: "订单项不存在", err: service.ErrLineItemNotFound, wantCode: errs.LineItemNotFound.Code},
		{name: "餐品不存在", err: service.ErrMealNotFound, wantCode: errs.MealNotFound.Code},
		{name: "组织未审核", err: service.ErrMealUnavailable, wantCode: errs.MealUnavailable.Code},
		{name: "组织不存在", err: service.ErrOrganizationNotFound, wantCode: errs.OrganizationNotFound.Code},
		{name: "用户不存在", err: service.ErrCustomerNotFound, wantCode: errs.CustomerNotFound.Code},
		{name: "参数错误", err: service.ErrInvalidItems, wantCode: errs.InvalidParam.Code},
		{name: "网关失败", err: service.ErrUpstreamFailure, wantCode: errs.UpstreamFailure.Code, wantErr: true},
		{name: "系统错误", err: errors.New("mock db error"), wantCode: errs.SystemError.Code, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := errorResult(tc.err)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order"
	"github.com/ecodeclub/mealhub/internal/order/internal/errs"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/order/internal/web"
	"github.com/ecodeclub/mealhub/internal/organization"
	orgmocks "github.com/ecodeclub/mealhub/internal/organization/mocks"
	"github.com/ecodeclub/mealhub/internal/payment"
	paymentmocks "github.com/ecodeclub/mealhub/internal/payment/mocks"
	"github.com/ecodeclub/mealhub/internal/test"
	testioc "github.com/ecodeclub/mealhub/internal/test/ioc"
	"github.com/ecodeclub/mealhub/internal/user"
	usermocks "github.com/ecodeclub/mealhub/internal/user/mocks"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	customerID    = 5
	customerEmail = "rahim@example.com"
	providerID    = 1
	orgID         = 100
	otherOrgID    = 200
)

type OrderTestSuite struct {
	suite.Suite
	db       *egorm.Component
	dao      dao.OrderDAO
	mealSvc  meal.Service
	paySvc   *paymentmocks.MockService
	customer *egin.Component
	provider *egin.Component
	admin    *egin.Component
}

func (s *OrderTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())

	orgSvc := orgmocks.NewMockOrganizationService(ctrl)
	orgSvc.EXPECT().FindByOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ownerID int64) (organization.Organization, error) {
			if ownerID == providerID {
				return organization.Organization{ID: orgID, OwnerID: ownerID, Name: "Kacchi House", IsVerified: true}, nil
			}
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}).AnyTimes()
	orgSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]organization.Organization{
			orgID:      {ID: orgID, Name: "Kacchi House", IsVerified: true},
			otherOrgID: {ID: otherOrgID, Name: "Biryani Corner", IsVerified: true},
		}, nil).AnyTimes()

	userSvc := usermocks.NewMockUserService(ctrl)
	rahim := user.User{ID: customerID, Name: "Rahim", Email: customerEmail, City: "Dhaka"}
	userSvc.EXPECT().FindByEmail(gomock.Any(), customerEmail).Return(rahim, nil).AnyTimes()
	userSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]user.User{customerID: rahim}, nil).AnyTimes()

	s.paySvc = paymentmocks.NewMockService(ctrl)

	orgModule := &organization.Module{Svc: orgSvc}
	mealModule := meal.InitModule(s.db, orgModule)
	s.mealSvc = mealModule.Svc

	econf.Set("order.reconcile", map[string]any{"limit": 10})
	mod, err := order.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(),
		mealModule, orgModule, &user.Module{Svc: userSvc}, &payment.Module{Svc: s.paySvc})
	require.NoError(s.T(), err)
	s.dao = dao.NewOrderGORMDAO(s.db)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.customer = s.newServer(func(engine *gin.Engine) {
		engine.Use(test.SessionMiddleware(customerID, user.RoleCustomer, customerEmail))
		mod.Hdl.PrivateRoutes(engine)
	})
	s.provider = s.newServer(func(engine *gin.Engine) {
		engine.Use(test.SessionMiddleware(providerID, user.RoleProvider, ""))
		mod.Hdl.PrivateRoutes(engine)
	})
	s.admin = s.newServer(func(engine *gin.Engine) {
		mod.AdminHdl.PrivateRoutes(engine)
	})
}

func (s *OrderTestSuite) newServer(register func(engine *gin.Engine)) *egin.Component {
	server := egin.Load("server").Build()
	register(server.Engine)
	return server
}

func (s *OrderTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `meals`").Error)
}

func (s *OrderTestSuite) createMeal(name string, price string, quantity int64) int64 {
	id, err := s.mealSvc.Create(context.Background(), providerID, meal.Meal{
		Name:     name,
		Category: "Soups",
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		InStock:  true,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *OrderTestSuite) quantity(id int64) int64 {
	m, err := s.mealSvc.FindByID(context.Background(), id)
	require.NoError(s.T(), err)
	return m.Quantity
}

func (s *OrderTestSuite) createOrder(sn, txnID string, status string, items ...dao.OrderItem) int64 {
	id, err := s.dao.Create(context.Background(), dao.Order{
		SN:             sn,
		CustomerId:     customerID,
		TotalPrice:     decimal.RequireFromString("27.5"),
		PaymentStatus:  status,
		ShippingStatus: "Pending",
		Transaction:    dao.Transaction{Id: txnID},
	}, items)
	require.NoError(s.T(), err)
	return id
}

func doJSON[T any](t *testing.T, server *egin.Component, method, path string, body any) test.Result[T] {
	req, err := http.NewRequest(method, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *OrderTestSuite) TestCreate() {
	t := s.T()
	soup := s.createMeal("Tomato Soup", "10", 10)
	rice := s.createMeal("Fried Rice", "5", 3)

	s.paySvc.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req payment.InitiateRequest) (payment.InitiateResult, error) {
			assert.Equal(t, "27.50", req.Amount.StringFixed(2))
			assert.Equal(t, "Rahim", req.CustomerName)
			return payment.InitiateResult{
				CheckoutURL:       "https://sandbox.shurjopayment.com/spaycheckout/?token=abc",
				GatewayOrderID:    "SP-1",
				TransactionStatus: "Initiated",
			}, nil
		})

	body := web.CreateReq{
		RequestID: "req-1",
		Products: []web.ItemReq{
			{Product: soup, Quantity: 1},
			{Product: rice, Quantity: 1},
			{Product: soup, Quantity: 1},
		},
	}
	res := doJSON[web.CreateResp](t, s.customer, http.MethodPost, "/order/create", body)
	require.Equal(t, 0, res.Code, res.Msg)
	assert.Equal(t, "https://sandbox.shurjopayment.com/spaycheckout/?token=abc", res.Data.CheckoutURL)
	assert.Len(t, res.Data.SN, 32)

	o, err := s.dao.FindById(context.Background(), res.Data.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", o.PaymentStatus)
	assert.Equal(t, "SP-1", o.Transaction.Id)
	assert.Equal(t, "27.50", o.TotalPrice.StringFixed(2))
	items, err := s.dao.FindItems(context.Background(), []int64{o.Id}, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(8), s.quantity(soup))
	assert.Equal(t, int64(2), s.quantity(rice))

	// 同一个请求 ID 再提交一次
	res = doJSON[web.CreateResp](t, s.customer, http.MethodPost, "/order/create", body)
	assert.Equal(t, errs.DuplicateRequest.Code, res.Code)
	assert.Equal(t, int64(8), s.quantity(soup))
}

func (s *OrderTestSuite) TestCreate_Rejected() {
	soup := s.createMeal("Tomato Soup", "10", 1)
	testCases := []struct {
		name     string
		req      web.CreateReq
		wantCode int
	}{
		{
			name:     "库存不足",
			req:      web.CreateReq{Products: []web.ItemReq{{Product: soup, Quantity: 2}}},
			wantCode: errs.OutOfStock.Code,
		},
		{
			name:     "餐品不存在",
			req:      web.CreateReq{Products: []web.ItemReq{{Product: soup + 100, Quantity: 1}}},
			wantCode: errs.MealNotFound.Code,
		},
		{
			name:     "没有餐品",
			req:      web.CreateReq{},
			wantCode: errs.InvalidParam.Code,
		},
		{
			name:     "数量不合法",
			req:      web.CreateReq{Products: []web.ItemReq{{Product: soup, Quantity: -1}}},
			wantCode: errs.InvalidParam.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := doJSON[web.CreateResp](t, s.customer, http.MethodPost, "/order/create", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, int64(1), s.quantity(soup))
		})
	}
}

func (s *OrderTestSuite) TestCreate_GatewayFailure() {
	t := s.T()
	soup := s.createMeal("Tomato Soup", "10", 5)
	s.paySvc.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(payment.InitiateResult{}, payment.ErrUpstreamFailure)
	res := doJSON[web.CreateResp](t, s.customer, http.MethodPost, "/order/create", web.CreateReq{
		Products: []web.ItemReq{{Product: soup, Quantity: 2}},
	})
	assert.Equal(t, errs.UpstreamFailure.Code, res.Code)

	var os []dao.Order
	require.NoError(t, s.db.Find(&os).Error)
	require.Len(t, os, 1)
	assert.Equal(t, "Pending", os[0].PaymentStatus)
	assert.Equal(t, "", os[0].Transaction.Id)
	// 库存等对账任务关闭订单的时候再释放
	assert.Equal(t, int64(3), s.quantity(soup))
}

func (s *OrderTestSuite) TestVerify() {
	t := s.T()
	soup := s.createMeal("Tomato Soup", "10", 8)
	s.createOrder("sn-verify", "SP-2", "Pending", dao.OrderItem{
		MealId: soup, OrgId: orgID, Quantity: 2, UnitPrice: decimal.RequireFromString("10"), Status: "Pending",
	})
	s.paySvc.EXPECT().Verify(gomock.Any(), "SP-2").Return([]payment.Verification{{
		GatewayOrderID:  "SP-2",
		CustomerOrderID: "sn-verify",
		BankStatus:      payment.BankStatusFailed,
		SPCode:          "1002",
		SPMessage:       "Failed",
		Method:          "bKash",
	}}, nil).Times(2)

	for i := 0; i < 2; i++ {
		res := doJSON[[]web.Verification](t, s.customer, http.MethodGet, "/order/verify?order_id=SP-2", nil)
		require.Equal(t, 0, res.Code, res.Msg)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "1002", res.Data[0].SPCode)
	}

	o, err := s.dao.FindByTxnId(context.Background(), "SP-2")
	require.NoError(t, err)
	assert.Equal(t, "Failed", o.PaymentStatus)
	assert.Equal(t, "bKash", o.Transaction.Method)
	// 只释放一次
	assert.Equal(t, int64(10), s.quantity(soup))

	s.paySvc.EXPECT().Verify(gomock.Any(), "SP-404").Return([]payment.Verification{}, nil)
	res := doJSON[[]web.Verification](t, s.customer, http.MethodGet, "/order/verify?order_id=SP-404", nil)
	assert.Equal(t, 0, res.Code)
	assert.Empty(t, res.Data)

	res = doJSON[[]web.Verification](t, s.customer, http.MethodGet, "/order/verify", nil)
	assert.Equal(t, errs.InvalidParam.Code, res.Code)
}

func (s *OrderTestSuite) TestMine() {
	t := s.T()
	for i := 0; i < 12; i++ {
		s.createOrder(fmt.Sprintf("sn-mine-%d", i), "", "Pending", dao.OrderItem{
			MealId: 1, OrgId: orgID, Quantity: 1, UnitPrice: decimal.RequireFromString("25"), Status: "Pending",
		})
	}
	res := doJSON[web.ListResp](t, s.customer, http.MethodGet, "/order/mine?page=2&limit=5&sort=id", nil)
	require.Equal(t, 0, res.Code, res.Msg)
	require.Len(t, res.Data.Data, 5)
	assert.Equal(t, int64(12), res.Data.Meta.Total)
	assert.Equal(t, int64(3), res.Data.Meta.TotalPages)
	first := res.Data.Data[0]
	assert.Equal(t, "sn-mine-5", first.SN)
	assert.Equal(t, "Rahim", first.Customer.Name)
	assert.Equal(t, "Kacchi House", first.Products[0].OrgName)
}

func (s *OrderTestSuite) TestProvider() {
	t := s.T()
	id := s.createOrder("sn-mixed", "SP-3", "Paid",
		dao.OrderItem{MealId: 1, OrgId: orgID, Quantity: 2, UnitPrice: decimal.RequireFromString("10"), Status: "Pending"},
		dao.OrderItem{MealId: 2, OrgId: otherOrgID, Quantity: 1, UnitPrice: decimal.RequireFromString("5"), Status: "Pending"},
	)
	s.createOrder("sn-other", "SP-4", "Paid",
		dao.OrderItem{MealId: 2, OrgId: otherOrgID, Quantity: 1, UnitPrice: decimal.RequireFromString("5"), Status: "Pending"},
	)

	res := doJSON[web.ListResp](t, s.provider, http.MethodGet, "/order/provider/list", nil)
	require.Equal(t, 0, res.Code, res.Msg)
	require.Len(t, res.Data.Data, 1)
	o := res.Data.Data[0]
	require.Len(t, o.Products, 1)
	assert.Equal(t, int64(1), o.Products[0].Product.ID)
	assert.Equal(t, "22.00", o.TotalPrice)
	assert.Nil(t, o.Transaction)

	testCases := []struct {
		name     string
		req      web.UpdateItemStatusReq
		wantCode int
	}{
		{
			name:     "更新自己的订单项",
			req:      web.UpdateItemStatusReq{OrderID: id, MealID: 1, Status: "Preparing"},
			wantCode: 0,
		},
		{
			name:     "别人的订单项",
			req:      web.UpdateItemStatusReq{OrderID: id, MealID: 2, Status: "Preparing"},
			wantCode: errs.LineItemNotFound.Code,
		},
		{
			name:     "状态不合法",
			req:      web.UpdateItemStatusReq{OrderID: id, MealID: 1, Status: "Eaten"},
			wantCode: errs.InvalidParam.Code,
		},
		{
			name:     "订单不存在",
			req:      web.UpdateItemStatusReq{OrderID: id + 100, MealID: 1, Status: "Delivered"},
			wantCode: errs.OrderNotFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := doJSON[any](t, s.provider, http.MethodPost, "/order/provider/item/status", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
	items, err := s.dao.FindItems(context.Background(), []int64{id}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Preparing", items[0].Status)
	assert.Equal(t, "Pending", items[1].Status)

	// 顾客不能访问服务商接口
	req, err := http.NewRequest(http.MethodGet, "/order/provider/list", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.customer.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func (s *OrderTestSuite) TestAdmin() {
	t := s.T()
	id := s.createOrder("sn-admin", "SP-5", "Paid",
		dao.OrderItem{MealId: 1, OrgId: orgID, Quantity: 1, UnitPrice: decimal.RequireFromString("25"), Status: "Pending"})
	s.createOrder("sn-done", "SP-6", "Paid",
		dao.OrderItem{MealId: 1, OrgId: orgID, Quantity: 1, UnitPrice: decimal.RequireFromString("25"), Status: "Delivered"})
	require.NoError(t, s.dao.UpdateShippingStatus(context.Background(), id+1, "Delivered"))

	res := doJSON[web.ListResp](t, s.admin, http.MethodGet, "/order/pending", nil)
	require.Equal(t, 0, res.Code, res.Msg)
	require.Len(t, res.Data.Data, 1)
	assert.Equal(t, "sn-admin", res.Data.Data[0].SN)

	res = doJSON[web.ListResp](t, s.admin, http.MethodGet, fmt.Sprintf("/order/list?customerId=%d&searchTerm=SN-", customerID), nil)
	require.Equal(t, 0, res.Code, res.Msg)
	assert.Equal(t, int64(2), res.Data.Meta.Total)

	detail := doJSON[web.Order](t, s.admin, http.MethodGet, fmt.Sprintf("/order/detail?id=%d", id), nil)
	require.Equal(t, 0, detail.Code, detail.Msg)
	require.NotNil(t, detail.Data.Transaction)
	assert.Equal(t, "SP-5", detail.Data.Transaction.ID)

	testCases := []struct {
		name     string
		req      web.UpdateShippingStatusReq
		wantCode int
	}{
		{name: "接单", req: web.UpdateShippingStatusReq{ID: id, Status: "Accepted"}},
		{name: "状态不合法", req: web.UpdateShippingStatusReq{ID: id, Status: "Lost"}, wantCode: errs.InvalidParam.Code},
		{name: "订单不存在", req: web.UpdateShippingStatusReq{ID: id + 100, Status: "Accepted"}, wantCode: errs.OrderNotFound.Code},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := doJSON[any](t, s.admin, http.MethodPost, "/order/shipping/status", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
	o, err := s.dao.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", o.ShippingStatus)
}

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderTestSuite))
}

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
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/mealhub/internal/meal"
	mealmocks "github.com/ecodeclub/mealhub/internal/meal/mocks"
	"github.com/ecodeclub/mealhub/internal/organization"
	orgmocks "github.com/ecodeclub/mealhub/internal/organization/mocks"
	"github.com/ecodeclub/mealhub/internal/statistics"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/web"
	"github.com/ecodeclub/mealhub/internal/test"
	testioc "github.com/ecodeclub/mealhub/internal/test/ioc"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	customerID = 5
	providerID = 1
	orgID      = 100
	otherOrgID = 200
)

// 只写统计需要的列，表结构以订单模块为准
type seedOrder struct {
	Id             int64
	SN             string
	CustomerId     int64
	TotalPrice     decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaymentStatus  string
	ShippingStatus string
	Ctime          int64
	Utime          int64
}

func (seedOrder) TableName() string {
	return "orders"
}

type seedOrderItem struct {
	Id        int64
	OrderId   int64
	MealId    int64
	OrgId     int64
	Quantity  int64
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status    string
	Ctime     int64
	Utime     int64
}

func (seedOrderItem) TableName() string {
	return "order_items"
}

type StatisticsTestSuite struct {
	suite.Suite
	db  *egorm.Component
	mod *statistics.Module
}

func (s *StatisticsTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), s.db.AutoMigrate(&seedOrder{}, &seedOrderItem{}))

	ctrl := gomock.NewController(s.T())
	mealSvc := mealmocks.NewMockService(ctrl)
	mealSvc.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(8), nil).AnyTimes()
	mealSvc.EXPECT().CountLowStock(gomock.Any(), gomock.Any()).Return(int64(2), nil).AnyTimes()
	orgSvc := orgmocks.NewMockOrganizationService(ctrl)
	orgSvc.EXPECT().FindByOwner(gomock.Any(), int64(providerID)).
		Return(organization.Organization{ID: orgID, Name: "Kacchi House"}, nil).AnyTimes()

	s.mod = statistics.InitModule(s.db, &meal.Module{Svc: mealSvc}, &organization.Module{Svc: orgSvc})
}

func (s *StatisticsTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
}

// seed 随机生成订单，返回已支付订单的总收入
func (s *StatisticsTestSuite) seed(n int) decimal.Decimal {
	paymentStatuses := []string{"Pending", "Paid", "Paid", "Failed", "Cancelled"}
	shippingStatuses := []string{"Pending", "Accepted", "Preparing", "Delivered", "Cancelled"}
	now := time.Now()
	paid := decimal.Zero
	for i := 1; i <= n; i++ {
		price := decimal.New(int64(rand.IntN(5000)+100), -2)
		quantity := int64(rand.IntN(3) + 1)
		total := price.Mul(decimal.NewFromInt(quantity)).Mul(decimal.RequireFromString("1.1")).Round(2)
		status := paymentStatuses[rand.IntN(len(paymentStatuses))]
		if status == "Paid" {
			paid = paid.Add(total)
		}
		// 分散到最近一年的不同月份
		ctime := now.AddDate(0, -rand.IntN(12), 0).UnixMilli()
		order := seedOrder{
			SN:             fmt.Sprintf("ORD-%d", i),
			CustomerId:     customerID,
			TotalPrice:     total,
			PaymentStatus:  status,
			ShippingStatus: shippingStatuses[rand.IntN(len(shippingStatuses))],
			Ctime:          ctime,
			Utime:          ctime,
		}
		require.NoError(s.T(), s.db.Create(&order).Error)
		org := int64(orgID)
		if i%3 == 0 {
			org = otherOrgID
		}
		require.NoError(s.T(), s.db.Create(&seedOrderItem{
			OrderId:   order.Id,
			MealId:    int64(i),
			OrgId:     org,
			Quantity:  quantity,
			UnitPrice: price,
			Status:    "Pending",
			Ctime:     ctime,
			Utime:     ctime,
		}).Error)
	}
	return paid
}

func (s *StatisticsTestSuite) TestAdmin() {
	t := s.T()
	paid := s.seed(40)

	server := gin.New()
	s.mod.AdminHdl.PrivateRoutes(server)
	recorder := test.NewJSONResponseRecorder[web.AdminStats]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/statistics/admin", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data

	assert.Equal(t, int64(40), res.TotalOrders)
	assert.InDelta(t, paid.InexactFloat64(), res.TotalRevenue, 0.001)
	assert.Len(t, res.PaymentStatus, 4)
	assert.Len(t, res.ShippingStatus, 5)

	var orders int64
	for _, st := range res.PaymentStatus {
		orders += st.Orders
	}
	assert.Equal(t, int64(40), orders)

	// 月度销售额加起来等于总收入
	monthly := decimal.Zero
	for _, m := range res.SalesData {
		monthly = monthly.Add(decimal.NewFromFloat(m.Revenue))
	}
	assert.InDelta(t, res.TotalRevenue, monthly.InexactFloat64(), 0.001)
	assert.Equal(t, int64(8), res.TotalProducts)
	assert.Equal(t, int64(2), res.LowStockProducts)
}

func (s *StatisticsTestSuite) TestProvider() {
	t := s.T()
	s.seed(30)

	server := gin.New()
	server.Use(test.SessionMiddleware(providerID, user.RoleProvider, ""))
	s.mod.Hdl.PrivateRoutes(server)
	recorder := test.NewJSONResponseRecorder[web.ProviderStats]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/statistics/provider", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data

	// 每三个订单有一个属于别的组织
	assert.Equal(t, int64(20), res.TotalOrders)
	assert.Equal(t, "Kacchi House", res.Organization.Name)
	assert.Len(t, res.ProductStatus, 4)
	var items int64
	for _, st := range res.ProductStatus {
		items += st.Count
	}
	assert.Equal(t, int64(20), items)
}

func (s *StatisticsTestSuite) TestCustomer() {
	t := s.T()
	paid := s.seed(10)

	server := gin.New()
	server.Use(test.SessionMiddleware(customerID, user.RoleCustomer, "rahim@example.com"))
	s.mod.Hdl.PrivateRoutes(server)
	recorder := test.NewJSONResponseRecorder[web.CustomerStats]()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/statistics/customer", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data

	assert.Equal(t, int64(10), res.TotalOrders)
	assert.InDelta(t, paid.InexactFloat64(), res.TotalSpent, 0.001)
	assert.Equal(t, map[string]int64{
		"Pending": 10, "Preparing": 0, "Delivered": 0, "Cancelled": 0,
	}, res.ItemStatus)
}

func TestStatistics(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

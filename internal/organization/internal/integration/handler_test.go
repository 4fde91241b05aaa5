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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/organization/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/organization/internal/web"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/test"
	testioc "github.com/ecodeclub/mealhub/internal/test/ioc"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const providerID = 123

type OrganizationTestSuite struct {
	suite.Suite
	db          *egorm.Component
	dao         dao.OrganizationDAO
	server      *egin.Component
	adminServer *egin.Component
	role        string
}

func (s *OrganizationTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	mod := organization.InitModule(s.db)
	s.dao = dao.NewGORMOrganizationDAO(s.db)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		test.SessionMiddleware(providerID, s.role, "")(ctx)
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(test.SessionMiddleware(1, user.RoleAdmin, ""))
	mod.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer
}

func (s *OrganizationTestSuite) SetupTest() {
	s.role = user.RoleProvider
}

func (s *OrganizationTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `organizations`").Error)
}

func (s *OrganizationTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		role     string
		req      web.CreateReq
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name:   "创建成功",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				org, err := s.dao.FindByOwner(context.Background(), providerID)
				require.NoError(t, err)
				assert.Equal(t, "Green Bowl", org.Name)
				assert.Equal(t, "Dhaka", org.City)
				assert.False(t, org.IsVerified)
			},
			role: user.RoleProvider,
			req: web.CreateReq{
				Name:        "Green Bowl",
				Address:     web.Address{City: "Dhaka"},
				ContactInfo: web.Contact{Phone: "01711111111"},
			},
			wantCode: 200,
			wantResp: test.Result[int64]{Data: 1},
		},
		{
			name: "重复创建",
			before: func(t *testing.T) {
				_, err := s.dao.Create(context.Background(), dao.Organization{Name: "old", OwnerId: providerID})
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				org, err := s.dao.FindByOwner(context.Background(), providerID)
				require.NoError(t, err)
				assert.Equal(t, "old", org.Name)
			},
			role:     user.RoleProvider,
			req:      web.CreateReq{Name: "new"},
			wantCode: 200,
			wantResp: test.Result[int64]{Code: 402002, Msg: "每个服务商只能创建一个组织"},
		},
		{
			name:     "名称为空",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			role:     user.RoleProvider,
			req:      web.CreateReq{Name: "  "},
			wantCode: 200,
			wantResp: test.Result[int64]{Code: 402004, Msg: "组织名称不能为空"},
		},
		{
			name:     "顾客不能创建组织",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			role:     user.RoleCustomer,
			req:      web.CreateReq{Name: "x"},
			wantCode: 403,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer func() {
				require.NoError(t, s.db.Exec("TRUNCATE TABLE `organizations`").Error)
			}()
			tc.before(t)
			s.role = tc.role
			req, err := http.NewRequest(http.MethodPost,
				"/organization/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != 200 {
				return
			}
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
		})
	}
}

func (s *OrganizationTestSuite) TestMine() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/organization/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Organization]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, 402001, recorder.MustScan().Code)

	id, err := s.dao.Create(context.Background(), dao.Organization{Name: "Green Bowl", OwnerId: providerID, City: "Dhaka"})
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Organization]()
	s.server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, id, res.Data.ID)
	assert.Equal(t, "Dhaka", res.Data.Address.City)
}

func (s *OrganizationTestSuite) TestAdminVerify() {
	t := s.T()
	for i := int64(1); i <= 3; i++ {
		_, err := s.dao.Create(context.Background(), dao.Organization{Name: "org", OwnerId: i})
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, "/organization/verify", iox.NewJSONReader(web.IDReq{ID: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	assert.Equal(t, 0, recorder.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost, "/organization/verify", iox.NewJSONReader(web.IDReq{ID: 404}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	assert.Equal(t, 402001, recorder.MustScan().Code)

	req, err = http.NewRequest(http.MethodGet, "/organization/unverified?page=1&limit=1&sort=-id", nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.adminServer.ServeHTTP(listRecorder, req)
	res := listRecorder.MustScan()
	assert.Equal(t, querybuilder.Meta{Page: 1, Limit: 1, Total: 2, TotalPages: 2}, res.Data.Meta)
	require.Len(t, res.Data.Data, 1)
	assert.Equal(t, int64(3), res.Data.Data[0].ID)
}

func TestOrganization(t *testing.T) {
	suite.Run(t, new(OrganizationTestSuite))
}

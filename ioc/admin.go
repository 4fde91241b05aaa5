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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mealhub/internal/order"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/statistics"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	orgHdl *organization.AdminHandler,
	orderHdl *order.AdminHandler,
	statsHdl *statistics.AdminHandler,
) AdminServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.admin").Build()
	res.Use(corsMiddleware("server.admin.allowOrigins"))
	res.Use(middleware.NewMetricsBuilder("mealhub_admin", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	res.Use(session.CheckLoginMiddleware())
	// admin 服务器上的所有接口都只允许管理员访问
	res.Use(middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleAdmin))
	orgHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	statsHdl.PrivateRoutes(res.Engine)
	return res
}

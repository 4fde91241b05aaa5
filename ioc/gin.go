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
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/statistics"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	mealHdl *meal.Handler,
	orgHdl *organization.Handler,
	payHdl *payment.Handler,
	orderHdl *order.Handler,
	statsHdl *statistics.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(corsMiddleware("server.web.allowOrigins"))
	res.Use(middleware.NewMetricsBuilder("mealhub_web", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 网关回调和餐品浏览不需要登录
	payHdl.PublicRoutes(res.Engine)
	mealHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)

	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	mealHdl.PrivateRoutes(res.Engine)
	orgHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	statsHdl.PrivateRoutes(res.Engine)
	return res
}

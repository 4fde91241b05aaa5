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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository/cache"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	refs     *refLoader
	reqCache cache.RequestCache
	logger   *elog.Component
}

func NewHandler(svc service.Service,
	mealSvc meal.Service,
	orgSvc organization.Service,
	userSvc user.Service,
	reqCache cache.RequestCache) *Handler {
	return &Handler{
		svc:      svc,
		refs:     newRefLoader(mealSvc, orgSvc, userSvc),
		reqCache: reqCache,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order", middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleCustomer))
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.GET("/mine", ginx.S(h.Mine))
	g.GET("/verify", ginx.B[VerifyReq](h.Verify))

	pg := server.Group("/order/provider", middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleProvider))
	pg.GET("/list", ginx.S(h.ProviderList))
	pg.POST("/item/status", ginx.BS[UpdateItemStatusReq](h.ProviderUpdateItemStatus))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	email := sess.Claims().Get("email").StringOrDefault("")
	if email == "" {
		return invalidParamResult("缺少用户邮箱"), nil
	}
	if req.RequestID != "" {
		ok, err := h.reqCache.SetNX(ctx.Request.Context(), req.RequestID)
		if err != nil {
			return systemErrorResult, err
		}
		if !ok {
			return duplicateRequestResult, nil
		}
	}
	res, err := h.svc.CreateOrder(ctx.Request.Context(), req.toDomain(email, ctx.ClientIP()))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: CreateResp{
			OrderID:     res.OrderID,
			SN:          res.SN,
			CheckoutURL: res.CheckoutURL,
		},
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	orders, meta, err := h.svc.ListByCustomer(ctx.Request.Context(), sess.Claims().Uid,
		querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(ctx, orders, meta), nil
}

// Verify 支付完成之后前端拿着网关订单号过来确认结果
func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq) (ginx.Result, error) {
	txnID := strings.TrimSpace(req.OrderID)
	if txnID == "" {
		return invalidParamResult("缺少 order_id"), nil
	}
	vs, err := h.svc.VerifyPayment(ctx.Request.Context(), txnID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: slice.Map(vs, func(idx int, src payment.Verification) Verification {
			return newVerification(src)
		}),
	}, nil
}

func (h *Handler) ProviderList(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	orders, meta, err := h.svc.ListByProvider(ctx.Request.Context(), sess.Claims().Uid,
		querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return errorResult(err)
	}
	return h.listResult(ctx, orders, meta), nil
}

func (h *Handler) ProviderUpdateItemStatus(ctx *ginx.Context, req UpdateItemStatusReq, sess session.Session) (ginx.Result, error) {
	status := domain.ItemStatus(req.Status)
	if !status.Valid() {
		return invalidParamResult("订单项状态不合法"), nil
	}
	err := h.svc.UpdateProviderLineItemStatus(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.MealID, status)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) listResult(ctx *ginx.Context, orders []domain.Order, meta querybuilder.Meta) ginx.Result {
	r := h.refs.load(ctx.Request.Context(), orders)
	return ginx.Result{
		Data: ListResp{
			Data: slice.Map(orders, func(idx int, src domain.Order) Order {
				return r.newOrder(src)
			}),
			Meta: meta,
		},
	}
}

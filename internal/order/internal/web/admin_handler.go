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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在管理后台上，权限由管理后台统一校验
type AdminHandler struct {
	svc  service.Service
	refs *refLoader
}

func NewAdminHandler(svc service.Service,
	mealSvc meal.Service,
	orgSvc organization.Service,
	userSvc user.Service) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		refs: newRefLoader(mealSvc, orgSvc, userSvc),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.GET("/list", ginx.W(h.List))
	g.GET("/pending", ginx.W(h.Pending))
	g.GET("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/shipping/status", ginx.B[UpdateShippingStatusReq](h.UpdateShippingStatus))
	g.POST("/item/status", ginx.B[UpdateItemStatusReq](h.UpdateItemStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	orders, meta, err := h.svc.List(ctx.Request.Context(), querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(ctx, orders, meta), nil
}

func (h *AdminHandler) Pending(ctx *ginx.Context) (ginx.Result, error) {
	orders, meta, err := h.svc.ListPending(ctx.Request.Context(), querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(ctx, orders, meta), nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	orders := []domain.Order{o}
	return ginx.Result{
		Data: h.refs.load(ctx.Request.Context(), orders).newOrder(o),
	}, nil
}

func (h *AdminHandler) UpdateShippingStatus(ctx *ginx.Context, req UpdateShippingStatusReq) (ginx.Result, error) {
	status := domain.ShippingStatus(req.Status)
	if !status.Valid() {
		return invalidParamResult("配送状态不合法"), nil
	}
	err := h.svc.UpdateShippingStatus(ctx.Request.Context(), req.ID, status)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) UpdateItemStatus(ctx *ginx.Context, req UpdateItemStatusReq) (ginx.Result, error) {
	status := domain.ItemStatus(req.Status)
	if !status.Valid() {
		return invalidParamResult("订单项状态不合法"), nil
	}
	err := h.svc.UpdateLineItemStatus(ctx.Request.Context(), req.OrderID, req.MealID, status)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) listResult(ctx *ginx.Context, orders []domain.Order, meta querybuilder.Meta) ginx.Result {
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

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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mealhub/internal/meal/internal/domain"
	"github.com/ecodeclub/mealhub/internal/meal/internal/service"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/meal")
	g.GET("/list", ginx.W(h.List))
	g.GET("/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/meal", middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleProvider))
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.GET("/mine", ginx.S(h.Mine))
	g.POST("/stock", ginx.BS[UpdateStockReq](h.UpdateStock))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	ms, meta, err := h.svc.List(ctx.Request.Context(), querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Data: slice.Map(ms, func(idx int, src domain.Meal) Meal {
				return newMeal(src)
			}),
			Meta: meta,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	m, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	switch {
	case errors.Is(err, service.ErrMealNotFound):
		return mealNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newMeal(m),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	if msg := req.validate(); msg != "" {
		return invalidParamResult(msg), nil
	}
	id, err := h.svc.Create(ctx.Request.Context(), sess.Claims().Uid, req.toDomain())
	if res, ok := orgErrorResult(err); ok {
		return res, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ms, err := h.svc.ListByOwner(ctx.Request.Context(), sess.Claims().Uid)
	if res, ok := orgErrorResult(err); ok {
		return res, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ms, func(idx int, src domain.Meal) Meal {
			return newMeal(src)
		}),
	}, nil
}

func (h *Handler) UpdateStock(ctx *ginx.Context, req UpdateStockReq, sess session.Session) (ginx.Result, error) {
	if req.Quantity < 0 {
		return invalidParamResult("库存不能小于 0"), nil
	}
	err := h.svc.UpdateStock(ctx.Request.Context(), sess.Claims().Uid, domain.Meal{
		ID:       req.ID,
		Quantity: req.Quantity,
		InStock:  req.InStock,
	})
	if res, ok := orgErrorResult(err); ok {
		return res, nil
	}
	switch {
	case errors.Is(err, service.ErrMealNotFound):
		return mealNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

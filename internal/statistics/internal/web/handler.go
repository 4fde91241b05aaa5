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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/service"
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

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/statistics/provider",
		middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleProvider),
		ginx.S(h.Provider))
	server.GET("/statistics/customer",
		middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleCustomer),
		ginx.S(h.Customer))
}

func (h *Handler) Provider(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, err := h.svc.ProviderStats(ctx.Request.Context(), sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrOrganizationNotFound):
		return orgNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProviderStats(stats),
	}, nil
}

func (h *Handler) Customer(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, err := h.svc.CustomerStats(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCustomerStats(stats),
	}, nil
}

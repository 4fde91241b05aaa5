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
	"github.com/ecodeclub/mealhub/internal/organization/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization/internal/service"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在管理后台上，权限由管理后台统一校验
type AdminHandler struct {
	svc service.OrganizationService
}

func NewAdminHandler(svc service.OrganizationService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/organization")
	g.GET("/unverified", ginx.W(h.ListUnverified))
	g.POST("/verify", ginx.B[IDReq](h.Verify))
}

func (h *AdminHandler) ListUnverified(ctx *ginx.Context) (ginx.Result, error) {
	orgs, meta, err := h.svc.ListUnverified(ctx.Request.Context(),
		querybuilder.FromValues(ctx.Request.URL.Query()))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Data: slice.Map(orgs, func(idx int, src domain.Organization) Organization {
				return newOrganization(src)
			}),
			Meta: meta,
		},
	}, nil
}

func (h *AdminHandler) Verify(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Verify(ctx.Request.Context(), req.ID)
	switch {
	case errors.Is(err, service.ErrOrganizationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

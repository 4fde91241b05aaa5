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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mealhub/internal/organization/internal/service"
	"github.com/ecodeclub/mealhub/internal/pkg/middleware"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 服务商自己的组织
type Handler struct {
	svc service.OrganizationService
}

func NewHandler(svc service.OrganizationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/organization", middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleProvider))
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.GET("/mine", ginx.S(h.Mine))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return invalidParamResult("组织名称不能为空"), nil
	}
	org := req.toDomain()
	org.OwnerID = sess.Claims().Uid
	id, err := h.svc.Create(ctx.Request.Context(), org)
	switch {
	case errors.Is(err, service.ErrDuplicateOwner):
		return duplicateResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	org, err := h.svc.FindByOwner(ctx.Request.Context(), sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrOrganizationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newOrganization(org),
	}, nil
}

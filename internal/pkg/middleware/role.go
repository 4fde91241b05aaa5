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

package middleware

import (
	"net/http"
	"slices"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// ClaimRole 登录时写进 JWT 的角色字段
const ClaimRole = "role"

// CheckRoleMiddlewareBuilder 按 JWT 里的角色做路由级别的访问控制
type CheckRoleMiddlewareBuilder struct {
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder() *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{logger: elog.DefaultLogger}
}

func (b *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, err := session.Get(&ginx.Context{Context: ctx})
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role := claims.Get(ClaimRole).StringOrDefault("")
		if !slices.Contains(roles, role) {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Warn("角色无权访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			return
		}
		ctx.Next()
	}
}

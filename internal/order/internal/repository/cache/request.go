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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./request.go -package=cachemocks -destination=mocks/request.mock.go RequestCache
type RequestCache interface {
	// SetNX 返回 false 说明这个请求 ID 已经用过了
	SetNX(ctx context.Context, requestID string) (bool, error)
}

type requestECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRequestECache(ec ecache.Cache) RequestCache {
	return &requestECache{
		ec:         ec,
		expiration: 24 * time.Hour,
	}
}

func (c *requestECache) SetNX(ctx context.Context, requestID string) (bool, error) {
	return c.ec.SetNX(ctx, c.key(requestID), requestID, c.expiration)
}

func (c *requestECache) key(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

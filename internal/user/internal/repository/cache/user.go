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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mealhub/internal/user/internal/domain"
)

//go:generate mockgen -source=./user.go -package=cachemocks -destination=mocks/user.mock.go UserCache
type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

// UserECache 订单列表补全顾客信息时读得很频繁
type UserECache struct {
	ec  ecache.Cache
	ttl time.Duration
}

func NewUserECache(ec ecache.Cache) UserCache {
	return &UserECache{
		ec:  &ecache.NamespaceCache{Namespace: "user:", C: ec},
		ttl: 15 * time.Minute,
	}
}

func (c *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, profileKey(id))
	return err
}

func (c *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := c.ec.Get(ctx, profileKey(id)).JSONScan(&u)
	return u, err
}

func (c *UserECache) Set(ctx context.Context, u domain.User) error {
	val, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, profileKey(u.ID), val, c.ttl)
}

func profileKey(id int64) string {
	return fmt.Sprintf("profile:%d", id)
}

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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mealhub/internal/payment/internal/domain"
)

//go:generate mockgen -source=./token.go -package=cachemocks -destination=mocks/token.mock.go TokenCache
type TokenCache interface {
	Get(ctx context.Context) (domain.Token, error)
	Set(ctx context.Context, token domain.Token, expiration time.Duration) error
	Delete(ctx context.Context) error
}

type TokenECache struct {
	cache ecache.Cache
}

func NewTokenECache(c ecache.Cache) TokenCache {
	return &TokenECache{
		cache: &ecache.NamespaceCache{
			Namespace: "payment:",
			C:         c,
		},
	}
}

func (c *TokenECache) Get(ctx context.Context) (domain.Token, error) {
	var token domain.Token
	err := c.cache.Get(ctx, c.key()).JSONScan(&token)
	return token, err
}

func (c *TokenECache) Set(ctx context.Context, token domain.Token, expiration time.Duration) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(), data, expiration)
}

func (c *TokenECache) Delete(ctx context.Context) error {
	_, err := c.cache.Delete(ctx, c.key())
	return err
}

func (c *TokenECache) key() string {
	return "shurjopay:token"
}

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

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mealhub/internal/payment/internal/domain"
	"github.com/ecodeclub/mealhub/internal/payment/internal/repository/cache"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

// ErrUpstreamFailure 网关不可达、返回非 2xx 或者返回了无法识别的内容
var ErrUpstreamFailure = errors.New("支付网关调用失败")

const (
	defaultAddress = "Bangladesh"
	defaultCity    = "Dhaka"
	// 提前一分钟让 token 过期，避免临界点上拿到刚好失效的 token
	tokenExpireAhead = time.Minute
	spCodeSuccess    = "200"
)

//go:generate mockgen -source=./shurjopay.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// Initiate 发起支付，返回收银台地址和网关订单号
	Initiate(ctx context.Context, req domain.InitiateRequest) (domain.InitiateResult, error)
	// Verify 查询网关订单的支付结果，网关不认识这个订单的时候返回空切片
	Verify(ctx context.Context, gatewayOrderID string) ([]domain.Verification, error)
}

type Config struct {
	Endpoint  string
	Username  string
	Password  string
	Prefix    string
	ReturnURL string
	CancelURL string
	Currency  string
	// 用户没有填写手机号的时候使用
	DefaultPhone string
	Timeout      time.Duration
}

type ShurjoPayService struct {
	client *resty.Client
	cache  cache.TokenCache
	cfg    Config
	logger *elog.Component
}

func NewShurjoPayService(client *resty.Client, c cache.TokenCache, cfg Config) Service {
	return &ShurjoPayService{
		client: client,
		cache:  c,
		cfg:    cfg,
		logger: elog.DefaultLogger,
	}
}

func NewRestyClient(cfg Config) *resty.Client {
	client := resty.New().SetBaseURL(strings.TrimSuffix(cfg.Endpoint, "/"))
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return client
}

func (s *ShurjoPayService) Initiate(ctx context.Context, req domain.InitiateRequest) (domain.InitiateResult, error) {
	token, err := s.token(ctx)
	if err != nil {
		return domain.InitiateResult{}, err
	}
	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Currency
	}
	body := secretPayReq{
		Prefix:          s.cfg.Prefix,
		Token:           token.Value,
		ReturnURL:       s.cfg.ReturnURL,
		CancelURL:       s.cfg.CancelURL,
		StoreID:         token.StoreID,
		Amount:          req.Amount.Round(2).InexactFloat64(),
		OrderID:         req.OrderID,
		Currency:        currency,
		CustomerName:    req.CustomerName,
		CustomerAddress: valueOrDefault(req.CustomerAddress, defaultAddress),
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   valueOrDefault(req.CustomerPhone, s.cfg.DefaultPhone),
		CustomerCity:    valueOrDefault(req.CustomerCity, defaultCity),
		ClientIP:        req.ClientIP,
	}
	var res secretPayResp
	resp, err := s.client.R().SetContext(ctx).
		SetAuthScheme(token.Type).
		SetAuthToken(token.Value).
		SetBody(body).
		SetResult(&res).
		ForceContentType("application/json").
		Post("/api/secret-pay")
	if err != nil {
		return domain.InitiateResult{}, errors.Wrapf(ErrUpstreamFailure, "发起支付 %s", err.Error())
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		s.dropToken(ctx)
	}
	if resp.IsError() {
		return domain.InitiateResult{}, errors.Wrapf(ErrUpstreamFailure, "发起支付 HTTP %d", resp.StatusCode())
	}
	if res.CheckoutURL == "" || res.SPOrderID == "" {
		return domain.InitiateResult{}, errors.Wrapf(ErrUpstreamFailure, "发起支付返回了未知的响应 %s", resp.String())
	}
	return domain.InitiateResult{
		CheckoutURL:       res.CheckoutURL,
		GatewayOrderID:    res.SPOrderID,
		TransactionStatus: res.TransactionStatus,
	}, nil
}

func (s *ShurjoPayService) Verify(ctx context.Context, gatewayOrderID string) ([]domain.Verification, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.R().SetContext(ctx).
		SetAuthScheme(token.Type).
		SetAuthToken(token.Value).
		SetBody(map[string]string{"order_id": gatewayOrderID}).
		Post("/api/verification")
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamFailure, "查询支付结果 %s", err.Error())
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		s.dropToken(ctx)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUpstreamFailure, "查询支付结果 HTTP %d", resp.StatusCode())
	}
	var list []verificationResp
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		// 订单号不存在的时候，网关返回的是一个只有 sp_code 的对象
		var unknown spError
		if json.Unmarshal(resp.Body(), &unknown) == nil && unknown.SPCode != "" {
			s.logger.Warn("网关找不到订单",
				elog.String("gatewayOrderId", gatewayOrderID),
				elog.String("spCode", unknown.SPCode),
				elog.String("message", unknown.Message))
			return []domain.Verification{}, nil
		}
		return nil, errors.Wrapf(ErrUpstreamFailure, "查询支付结果返回了未知的响应 %s", resp.String())
	}
	return slice.Map(list, func(idx int, src verificationResp) domain.Verification {
		return src.toDomain()
	}), nil
}

// token 优先从缓存里面拿，缓存没有才去网关申请
func (s *ShurjoPayService) token(ctx context.Context) (domain.Token, error) {
	token, err := s.cache.Get(ctx)
	if err == nil && token.Value != "" {
		return token, nil
	}
	var res tokenResp
	resp, err := s.client.R().SetContext(ctx).
		SetBody(map[string]string{
			"username": s.cfg.Username,
			"password": s.cfg.Password,
		}).
		SetResult(&res).
		ForceContentType("application/json").
		Post("/api/get_token")
	if err != nil {
		return domain.Token{}, errors.Wrapf(ErrUpstreamFailure, "获取 token %s", err.Error())
	}
	if resp.IsError() || res.SPCode != spCodeSuccess || res.Token == "" {
		return domain.Token{}, errors.Wrapf(ErrUpstreamFailure, "获取 token HTTP %d %s", resp.StatusCode(), res.Message)
	}
	token = domain.Token{
		Value:      res.Token,
		Type:       valueOrDefault(res.TokenType, "Bearer"),
		StoreID:    res.StoreID,
		ExecuteURL: res.ExecuteURL,
	}
	if exp := time.Duration(res.ExpiresIn)*time.Second - tokenExpireAhead; exp > 0 {
		if er := s.cache.Set(ctx, token, exp); er != nil {
			s.logger.Warn("缓存支付 token 失败", elog.FieldErr(er))
		}
	}
	return token, nil
}

func (s *ShurjoPayService) dropToken(ctx context.Context) {
	if err := s.cache.Delete(ctx); err != nil {
		s.logger.Warn("删除支付 token 失败", elog.FieldErr(err))
	}
}

func valueOrDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

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

package job

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcilePaymentsJob)(nil)

type ReconcileConfig struct {
	// 每批处理的订单数
	Limit int
	// 只对账这段时间内创建的订单
	Lookback time.Duration
	// 超过这个时间还没有拿到网关订单号的订单直接关闭
	AbandonAfter time.Duration
	Timeout      time.Duration
}

// ReconcilePaymentsJob 回调可能丢失，定时去网关确认待支付订单的结果
type ReconcilePaymentsJob struct {
	svc    service.Service
	cfg    ReconcileConfig
	now    func() time.Time
	logger *elog.Component
}

func NewReconcilePaymentsJob(svc service.Service, cfg ReconcileConfig) *ReconcilePaymentsJob {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &ReconcilePaymentsJob{
		svc:    svc,
		cfg:    cfg,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (j *ReconcilePaymentsJob) Name() string {
	return "ReconcilePaymentsJob"
}

func (j *ReconcilePaymentsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.cfg.Timeout)
	defer cancel()
	now := j.now()
	verifyErr := j.each(ctx, domain.UnpaidQuery{
		HasTransaction: true,
		CtimeStart:     now.Add(-j.cfg.Lookback).UnixMilli(),
		CtimeEnd:       now.UnixMilli(),
	}, func(o domain.Order) error {
		_, err := j.svc.VerifyPayment(ctx, o.Transaction.ID)
		return err
	})
	cancelErr := j.each(ctx, domain.UnpaidQuery{
		HasTransaction: false,
		CtimeEnd:       now.Add(-j.cfg.AbandonAfter).UnixMilli(),
	}, func(o domain.Order) error {
		return j.svc.CancelUnpaid(ctx, o.ID)
	})
	return errors.Join(verifyErr, cancelErr)
}

// each 按 ID 翻页，单个订单失败不影响后面的订单
func (j *ReconcilePaymentsJob) each(ctx context.Context, q domain.UnpaidQuery, fn func(o domain.Order) error) error {
	q.Limit = j.cfg.Limit
	for {
		os, err := j.svc.ListUnpaid(ctx, q)
		if err != nil {
			return err
		}
		for _, o := range os {
			if er := fn(o); er != nil {
				j.logger.Error("订单对账失败",
					elog.Int64("orderId", o.ID),
					elog.String("txnId", o.Transaction.ID),
					elog.FieldErr(er))
			}
		}
		if len(os) < q.Limit {
			return nil
		}
		q.AfterID = os[len(os)-1].ID
	}
}

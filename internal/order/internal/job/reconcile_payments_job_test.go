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
	"testing"
	"time"

	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	ordermocks "github.com/ecodeclub/mealhub/internal/order/mocks"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconcilePaymentsJob_Run(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	cfg := ReconcileConfig{
		Limit:        2,
		Lookback:     24 * time.Hour,
		AbandonAfter: 30 * time.Minute,
	}
	verifyQuery := domain.UnpaidQuery{
		HasTransaction: true,
		CtimeStart:     now.Add(-24 * time.Hour).UnixMilli(),
		CtimeEnd:       now.UnixMilli(),
		Limit:          2,
	}
	cancelQuery := domain.UnpaidQuery{
		CtimeEnd: now.Add(-30 * time.Minute).UnixMilli(),
		Limit:    2,
	}
	withTxn := func(id int64, txnID string) domain.Order {
		return domain.Order{ID: id, Transaction: domain.Transaction{ID: txnID}}
	}

	testCases := []struct {
		name    string
		mock    func(svc *ordermocks.MockService)
		wantErr error
	}{
		{
			name: "翻页对账并关闭超时订单",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().ListUnpaid(gomock.Any(), verifyQuery).
					Return([]domain.Order{withTxn(1, "sp1"), withTxn(2, "sp2")}, nil)
				svc.EXPECT().VerifyPayment(gomock.Any(), "sp1").Return(nil, nil)
				// 单个失败不影响后面的
				svc.EXPECT().VerifyPayment(gomock.Any(), "sp2").Return(nil, payment.ErrUpstreamFailure)
				next := verifyQuery
				next.AfterID = 2
				svc.EXPECT().ListUnpaid(gomock.Any(), next).
					Return([]domain.Order{withTxn(3, "sp3")}, nil)
				svc.EXPECT().VerifyPayment(gomock.Any(), "sp3").Return(nil, nil)

				svc.EXPECT().ListUnpaid(gomock.Any(), cancelQuery).
					Return([]domain.Order{{ID: 7}}, nil)
				svc.EXPECT().CancelUnpaid(gomock.Any(), int64(7)).Return(nil)
			},
		},
		{
			name: "查询失败",
			mock: func(svc *ordermocks.MockService) {
				svc.EXPECT().ListUnpaid(gomock.Any(), verifyQuery).Return(nil, errors.New("mock db error"))
				svc.EXPECT().ListUnpaid(gomock.Any(), cancelQuery).Return(nil, nil)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			tc.mock(svc)
			j := NewReconcilePaymentsJob(svc, cfg)
			j.now = func() time.Time { return now }
			err := j.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "ReconcilePaymentsJob", j.Name())
		})
	}
}

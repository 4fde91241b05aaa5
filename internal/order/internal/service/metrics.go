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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orderCreatedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mealhub",
		Subsystem: "order",
		Name:      "created_total",
		Help:      "按结果统计的下单次数",
	}, []string{"result"})
	paymentVerifiedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mealhub",
		Subsystem: "order",
		Name:      "payment_verified_total",
		Help:      "按支付状态统计的支付确认次数",
	}, []string{"status"})
)

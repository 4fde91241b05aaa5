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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Length 订单序列号固定长度，同时作为支付网关那边的订单号
const Length = 32

type Generator struct {
	now  func() time.Time
	uuid func() string
}

func NewGenerator() *Generator {
	return &Generator{
		now:  time.Now,
		uuid: shortuuid.New,
	}
}

// Generate 毫秒时间戳 + 用户 ID 后四位 + shortuuid，截断到 Length
func (g *Generator) Generate(uid int64) string {
	if uid < 0 {
		uid = -uid
	}
	sn := fmt.Sprintf("%d%04d%s", g.now().UnixMilli(), uid%10000, g.uuid())
	if len(sn) > Length {
		sn = sn[:Length]
	}
	return sn
}

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

package errs

var (
	SystemError     = ErrorCode{Code: 520001, Msg: "系统错误"}
	UpstreamFailure = ErrorCode{Code: 520002, Msg: "支付网关暂时不可用，请稍后再试"}

	OrderNotFound        = ErrorCode{Code: 420001, Msg: "订单不存在"}
	LineItemNotFound     = ErrorCode{Code: 420002, Msg: "订单项不存在"}
	MealNotFound         = ErrorCode{Code: 420003, Msg: "餐品不存在"}
	OutOfStock           = ErrorCode{Code: 420004, Msg: "餐品已售罄"}
	InvalidParam         = ErrorCode{Code: 420005, Msg: "参数错误"}
	DuplicateRequest     = ErrorCode{Code: 420006, Msg: "请勿重复提交订单"}
	OrganizationNotFound = ErrorCode{Code: 420007, Msg: "请先创建组织"}
	CustomerNotFound     = ErrorCode{Code: 420008, Msg: "用户不存在"}
	MealUnavailable      = ErrorCode{Code: 420009, Msg: "餐品所属组织还没有通过审核"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

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
	SystemError            = ErrorCode{Code: 503001, Msg: "系统错误"}
	MealNotFound           = ErrorCode{Code: 403001, Msg: "餐品不存在"}
	OrganizationNotFound   = ErrorCode{Code: 403002, Msg: "请先创建组织"}
	OrganizationUnverified = ErrorCode{Code: 403003, Msg: "组织还没有通过审核"}
	InvalidParam           = ErrorCode{Code: 403004, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

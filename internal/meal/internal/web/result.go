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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mealhub/internal/meal/internal/errs"
	"github.com/ecodeclub/mealhub/internal/meal/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	mealNotFoundResult = ginx.Result{
		Code: errs.MealNotFound.Code,
		Msg:  errs.MealNotFound.Msg,
	}
)

func invalidParamResult(msg string) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidParam.Code,
		Msg:  msg,
	}
}

// orgErrorResult 服务商相关接口共用的组织校验错误
func orgErrorResult(err error) (ginx.Result, bool) {
	switch {
	case errors.Is(err, service.ErrOrganizationNotFound):
		return ginx.Result{Code: errs.OrganizationNotFound.Code, Msg: errs.OrganizationNotFound.Msg}, true
	case errors.Is(err, service.ErrOrganizationUnverified):
		return ginx.Result{Code: errs.OrganizationUnverified.Code, Msg: errs.OrganizationUnverified.Msg}, true
	default:
		return ginx.Result{}, false
	}
}

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
	"github.com/ecodeclub/mealhub/internal/order/internal/errs"
	"github.com/ecodeclub/mealhub/internal/order/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)

func invalidParamResult(msg string) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidParam.Code,
		Msg:  msg,
	}
}

func codeResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}

// errorResult 业务错误转成错误码，其余的都是系统错误
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidItems), errors.Is(err, service.ErrInvalidStatus):
		return invalidParamResult(err.Error()), nil
	case errors.Is(err, service.ErrMealNotFound):
		return codeResult(errs.MealNotFound), nil
	case errors.Is(err, service.ErrOutOfStock):
		return codeResult(errs.OutOfStock), nil
	case errors.Is(err, service.ErrMealUnavailable):
		return codeResult(errs.MealUnavailable), nil
	case errors.Is(err, service.ErrCustomerNotFound):
		return codeResult(errs.CustomerNotFound), nil
	case errors.Is(err, service.ErrOrganizationNotFound):
		return codeResult(errs.OrganizationNotFound), nil
	case errors.Is(err, service.ErrLineItemNotFound):
		return codeResult(errs.LineItemNotFound), nil
	case errors.Is(err, service.ErrUpstreamFailure):
		return codeResult(errs.UpstreamFailure), err
	case errors.Is(err, service.ErrOrderNotFound):
		return codeResult(errs.OrderNotFound), nil
	default:
		return systemErrorResult, err
	}
}

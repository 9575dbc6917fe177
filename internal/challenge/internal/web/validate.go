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

	"github.com/ecodeclub/checkin/internal/challenge/internal/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors 字段校验失败时返回给前端的错误，key 是字段名加上校验规则
var fieldErrors = map[string]errs.ErrorCode{
	"Name.required":      errs.ChallengeNameRequired,
	"StartDate.required": errs.ChallengeDateRequired,
	"EndDate.required":   errs.ChallengeDateRequired,
	"StartDate.datetime": errs.DateFormatInvalid,
	"EndDate.datetime":   errs.DateFormatInvalid,
	"Proof.required":     errs.ProofRequired,
	"Vote.oneof":         errs.VoteInvalid,
}

// validateReq 校验通过返回 ok = true，
// 否则返回第一个不合法字段对应的错误码
func validateReq(req any) (code errs.ErrorCode, ok bool) {
	err := validate.Struct(req)
	if err == nil {
		return errs.ErrorCode{}, true
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return errs.PayloadInvalid, false
	}
	fe := ves[0]
	if code, ok = fieldErrors[fe.StructField()+"."+fe.Tag()]; ok {
		return code, false
	}
	return errs.PayloadInvalid, false
}

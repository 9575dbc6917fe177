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
	SystemError = ErrorCode{Code: 521001, Msg: "系统错误"}

	// 用户输入不合法，前端直接展示 Msg
	ChallengeNameRequired = ErrorCode{Code: 421001, Msg: "请输入挑战名称"}
	ChallengeDateRequired = ErrorCode{Code: 421002, Msg: "请选择开始和结束日期"}
	ChallengeDateInvalid  = ErrorCode{Code: 421003, Msg: "结束日期必须晚于开始日期"}
	DateFormatInvalid     = ErrorCode{Code: 421010, Msg: "日期格式必须是 YYYY-MM-DD"}
	ParticipantDuplicated = ErrorCode{Code: 421004, Msg: "参与者名字不能重复"}
	ParticipantIsYourself = ErrorCode{Code: 421005, Msg: "你已经默认是参与者了"}
	ProofRequired         = ErrorCode{Code: 421006, Msg: "请填写打卡内容"}
	VoteInvalid           = ErrorCode{Code: 421007, Msg: "投票只能是 accept 或者 reject"}
	ActionUnknown         = ErrorCode{Code: 421008, Msg: "未知的操作"}
	PayloadInvalid        = ErrorCode{Code: 421009, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

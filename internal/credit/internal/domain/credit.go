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

package domain

// Credit 某个用户在所有挑战里累计的积分
type Credit struct {
	Name        string
	TotalAmount int
	Logs        []CreditLog
}

type CreditLog struct {
	// Key 挑战、参与者和日期拼起来，同一个 Key 只记一次
	Key           string
	ChallengeID   string
	ChallengeName string
	Date          string
	ChangeAmount  int
	// 毫秒
	Ctime int64
}

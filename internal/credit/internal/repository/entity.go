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

package repository

// credits 文档的结构，key 是用户名
type ledger map[string]Credit

type Credit struct {
	Total int         `json:"total"`
	Logs  []CreditLog `json:"logs"`
}

type CreditLog struct {
	Key           string `json:"key"`
	ChallengeID   string `json:"challengeId"`
	ChallengeName string `json:"challengeName"`
	Date          string `json:"date"`
	Change        int    `json:"change"`
	Ctime         int64  `json:"ctime"`
}

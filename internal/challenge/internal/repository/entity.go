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

// 下面是 challenges 文档里的 JSON 结构

type Challenge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Stake        string        `json:"stake"`
	Participants []Participant `json:"participants"`
	CreatedAt    string        `json:"createdAt"`
}

type Participant struct {
	Name        string       `json:"name"`
	Points      int          `json:"points"`
	Submissions []Submission `json:"submissions"`
	VotedOn     []string     `json:"votedOn"`
}

type Submission struct {
	Date          string `json:"date"`
	Proof         string `json:"proof"`
	IsText        bool   `json:"isText"`
	Status        string `json:"status"`
	Votes         []Vote `json:"votes"`
	PointsAwarded bool   `json:"pointsAwarded,omitempty"`
}

type Vote struct {
	Voter string `json:"voter"`
	Vote  string `json:"vote"`
}

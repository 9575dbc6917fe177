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

package event

// pointsAwardedEvents 和挑战模块发送消息用的 topic 保持一致
const pointsAwardedEvents = "challenge_points_awarded_events"

type PointsAwardedEvent struct {
	EventID       string `json:"eventId"`
	ChallengeID   string `json:"challengeId"`
	ChallengeName string `json:"challengeName"`
	Participant   string `json:"participant"`
	Date          string `json:"date"`
	Points        int    `json:"points"`
	AwardedAt     int64  `json:"awardedAt"`
}

// Key 一次提交只会加一次分
func (e PointsAwardedEvent) Key() string {
	return e.ChallengeID + ":" + e.Participant + ":" + e.Date
}

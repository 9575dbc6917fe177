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

import (
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const PointsAwardedTopic = "challenge_points_awarded_events"

// PointsAwardedEvent 某次提交第一次被通过、给提交人加了分
type PointsAwardedEvent struct {
	EventID       string `json:"eventId"`
	ChallengeID   string `json:"challengeId"`
	ChallengeName string `json:"challengeName"`
	Participant   string `json:"participant"`
	Date          string `json:"date"`
	Points        int    `json:"points"`
	// 毫秒
	AwardedAt int64 `json:"awardedAt"`
}

func NewPointsAwardedEvent(challengeID, challengeName, participant, date string, now time.Time) PointsAwardedEvent {
	return PointsAwardedEvent{
		EventID:       shortuuid.New(),
		ChallengeID:   challengeID,
		ChallengeName: challengeName,
		Participant:   participant,
		Date:          date,
		Points:        1,
		AwardedAt:     now.UnixMilli(),
	}
}

// MessageKey 同一个人在同一个挑战同一天只会加一次分，消费方用它去重
func (e PointsAwardedEvent) MessageKey() string {
	return e.ChallengeID + ":" + e.Participant + ":" + e.Date
}

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

import (
	"slices"
	"time"
)

const (
	LeaderboardCompleted    = "Completed"
	LeaderboardNotCompleted = "Did not complete"
)

type LeaderboardEntry struct {
	Rank   int
	Name   string
	Points int
	Status string
}

// Leaderboard 按积分从高到低排名，积分相同的保持加入顺序
func (c *Challenge) Leaderboard() []LeaderboardEntry {
	ps := slices.Clone(c.Participants)
	slices.SortStableFunc(ps, func(a, b Participant) int {
		return b.Points - a.Points
	})
	res := make([]LeaderboardEntry, 0, len(ps))
	for i, p := range ps {
		status := LeaderboardNotCompleted
		if p.Points > 0 {
			status = LeaderboardCompleted
		}
		res = append(res, LeaderboardEntry{
			Rank:   i + 1,
			Name:   p.Name,
			Points: p.Points,
			Status: status,
		})
	}
	return res
}

type PendingReview struct {
	Submitter string
	Date      string
	Proof     string
	IsText    bool
}

// PendingReviews 等待 user 审核的提交：状态是 pending，user 还没投过票，也不是 user 自己的。
// user 不是参与者的时候没有可审核的内容。
func (c *Challenge) PendingReviews(user string) []PendingReview {
	res := []PendingReview{}
	if !c.HasParticipant(user) {
		return res
	}
	for _, p := range c.Participants {
		if p.Name == user {
			continue
		}
		for _, sub := range p.Submissions {
			if sub.Status != StatusPending || sub.votedBy(user) {
				continue
			}
			res = append(res, PendingReview{
				Submitter: p.Name,
				Date:      sub.Date,
				Proof:     sub.Proof,
				IsText:    sub.IsText,
			})
		}
	}
	return res
}

func (s *Submission) votedBy(voter string) bool {
	return slices.ContainsFunc(s.Votes, func(v Vote) bool {
		return v.Voter == voter
	})
}

// View 挑战详情页需要的全部数据
type View struct {
	Challenge         Challenge
	TimeRemaining     TimeRemaining
	IsParticipant     bool
	HasSubmittedToday bool
	PendingReviews    []PendingReview
	// Leaderboard 只有挑战结束之后才有
	Leaderboard []LeaderboardEntry
}

func NewView(c Challenge, user string, now time.Time) View {
	v := View{
		Challenge:      c,
		TimeRemaining:  NewTimeRemaining(c.EndDate, now),
		PendingReviews: c.PendingReviews(user),
		Leaderboard:    []LeaderboardEntry{},
	}
	if p, ok := c.Participant(user); ok {
		v.IsParticipant = true
		_, v.HasSubmittedToday = p.Submission(Today(now))
	}
	if v.TimeRemaining.Expired {
		v.Leaderboard = c.Leaderboard()
	}
	return v
}

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
	"encoding/json"
	"strings"

	"github.com/ecodeclub/checkin/internal/challenge/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ChallengeID struct {
	ID string `json:"id"`
}

type CreateReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Stake       string `json:"stake"`
	// Participants 除了当前用户之外的参与者
	Participants []string `json:"participants"`
}

func (r *CreateReq) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Stake = strings.TrimSpace(r.Stake)
}

type SubmitReq struct {
	ID     string `json:"id"`
	Proof  string `json:"proof" validate:"required"`
	IsText bool   `json:"isText"`
}

func (r *SubmitReq) normalize() {
	r.Proof = strings.TrimSpace(r.Proof)
}

type VoteReq struct {
	ID        string `json:"id"`
	Submitter string `json:"submitter"`
	Date      string `json:"date"`
	Vote      string `json:"vote" validate:"oneof=accept reject"`
}

type DispatchReq struct {
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

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
	PointsAwarded bool   `json:"pointsAwarded"`
}

type Vote struct {
	Voter string `json:"voter"`
	Vote  string `json:"vote"`
}

func newChallenge(c domain.Challenge) Challenge {
	return Challenge{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Stake:       c.Stake,
		CreatedAt:   domain.FormatCreatedAt(c.CreatedAt),
		Participants: slice.Map(c.Participants, func(idx int, p domain.Participant) Participant {
			return Participant{
				Name:    p.Name,
				Points:  p.Points,
				VotedOn: p.VotedOn,
				Submissions: slice.Map(p.Submissions, func(idx int, sub domain.Submission) Submission {
					return Submission{
						Date:          sub.Date,
						Proof:         sub.Proof,
						IsText:        sub.IsText,
						Status:        sub.Status.String(),
						PointsAwarded: sub.PointsAwarded,
						Votes: slice.Map(sub.Votes, func(idx int, v domain.Vote) Vote {
							return Vote{Voter: v.Voter, Vote: string(v.Vote)}
						}),
					}
				}),
			}
		}),
	}
}

type TimeRemaining struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Expired bool  `json:"expired"`
}

func newTimeRemaining(t domain.TimeRemaining) TimeRemaining {
	return TimeRemaining{
		Days:    t.Days,
		Hours:   t.Hours,
		Minutes: t.Minutes,
		Seconds: t.Seconds,
		Expired: t.Expired,
	}
}

// Card 首页上的挑战卡片
type Card struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Stake            string        `json:"stake"`
	EndDate          string        `json:"endDate"`
	ParticipantCount int           `json:"participantCount"`
	TimeRemaining    TimeRemaining `json:"timeRemaining"`
}

type Dashboard struct {
	CurrentUser string `json:"currentUser"`
	Active      []Card `json:"active"`
	Completed   []Card `json:"completed"`
}

type PendingReview struct {
	Submitter string `json:"submitter"`
	Date      string `json:"date"`
	Proof     string `json:"proof"`
	IsText    bool   `json:"isText"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Status string `json:"status"`
}

type Detail struct {
	Challenge         Challenge          `json:"challenge"`
	TimeRemaining     TimeRemaining      `json:"timeRemaining"`
	IsParticipant     bool               `json:"isParticipant"`
	HasSubmittedToday bool               `json:"hasSubmittedToday"`
	PendingReviews    []PendingReview    `json:"pendingReviews"`
	Leaderboard       []LeaderboardEntry `json:"leaderboard"`
}

func newDetail(v domain.View) Detail {
	return Detail{
		Challenge:         newChallenge(v.Challenge),
		TimeRemaining:     newTimeRemaining(v.TimeRemaining),
		IsParticipant:     v.IsParticipant,
		HasSubmittedToday: v.HasSubmittedToday,
		PendingReviews: slice.Map(v.PendingReviews, func(idx int, src domain.PendingReview) PendingReview {
			return PendingReview{
				Submitter: src.Submitter,
				Date:      src.Date,
				Proof:     src.Proof,
				IsText:    src.IsText,
			}
		}),
		Leaderboard: slice.Map(v.Leaderboard, func(idx int, src domain.LeaderboardEntry) LeaderboardEntry {
			return LeaderboardEntry{
				Rank:   src.Rank,
				Name:   src.Name,
				Points: src.Points,
				Status: src.Status,
			}
		}),
	}
}

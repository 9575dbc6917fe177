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

import "time"

type Challenge struct {
	ID          string
	Name        string
	Description string
	// StartDate EndDate 都是 YYYY-MM-DD 格式的日期
	StartDate    string
	EndDate      string
	Stake        string
	Participants []Participant
	CreatedAt    time.Time
}

type Participant struct {
	Name        string
	Points      int
	Submissions []Submission
	// VotedOn 保留字段，目前没有任何逻辑读写它
	VotedOn []string
}

type Submission struct {
	Date   string
	Proof  string
	IsText bool
	Status SubmissionStatus
	Votes  []Vote
	// PointsAwarded 一旦置为 true 就不会再给这次提交加分
	PointsAwarded bool
}

type Vote struct {
	Voter string
	Vote  VoteType
}

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusAccepted SubmissionStatus = "accepted"
	StatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

type VoteType string

const (
	VoteAccept VoteType = "accept"
	VoteReject VoteType = "reject"
)

func (v VoteType) Valid() bool {
	return v == VoteAccept || v == VoteReject
}

func NewParticipant(name string) Participant {
	return Participant{
		Name:        name,
		Submissions: []Submission{},
		VotedOn:     []string{},
	}
}

// Participant 返回指向 c.Participants 内部元素的指针，修改会直接作用在 c 上
func (c *Challenge) Participant(name string) (*Participant, bool) {
	for i := range c.Participants {
		if c.Participants[i].Name == name {
			return &c.Participants[i], true
		}
	}
	return nil, false
}

func (c *Challenge) HasParticipant(name string) bool {
	_, ok := c.Participant(name)
	return ok
}

func (p *Participant) Submission(date string) (*Submission, bool) {
	for i := range p.Submissions {
		if p.Submissions[i].Date == date {
			return &p.Submissions[i], true
		}
	}
	return nil, false
}

// Submit 同一天重复提交会覆盖原记录，已有的投票全部作废
func (p *Participant) Submit(date, proof string, isText bool) {
	if sub, ok := p.Submission(date); ok {
		sub.Proof = proof
		sub.IsText = isText
		sub.Status = StatusPending
		sub.Votes = []Vote{}
		return
	}
	p.Submissions = append(p.Submissions, Submission{
		Date:   date,
		Proof:  proof,
		IsText: isText,
		Status: StatusPending,
		Votes:  []Vote{},
	})
}

// UpsertVote 同一个投票人只保留最后一次投票
func (s *Submission) UpsertVote(vote Vote) {
	for i := range s.Votes {
		if s.Votes[i].Voter == vote.Voter {
			s.Votes[i].Vote = vote.Vote
			return
		}
	}
	s.Votes = append(s.Votes, vote)
}

func (s *Submission) countVotes() (accept, reject int) {
	for _, v := range s.Votes {
		switch v.Vote {
		case VoteAccept:
			accept++
		case VoteReject:
			reject++
		}
	}
	return accept, reject
}

// Threshold 通过或者拒绝所需的票数
func Threshold(participants int) int {
	return max(1, participants/2)
}

// UpdateSubmissionStatus 根据当前的投票重新计算 sub 的状态。
// 通过的判定优先于拒绝，首次通过时给 p 加一分并返回 true。
// 已经加过的分不会因为后续变成拒绝而扣掉。
func (c *Challenge) UpdateSubmissionStatus(p *Participant, sub *Submission) bool {
	threshold := Threshold(len(c.Participants))
	accept, reject := sub.countVotes()
	switch {
	case accept >= threshold:
		sub.Status = StatusAccepted
		if !sub.PointsAwarded {
			p.Points++
			sub.PointsAwarded = true
			return true
		}
	case reject >= threshold:
		sub.Status = StatusRejected
	default:
		sub.Status = StatusPending
	}
	return false
}

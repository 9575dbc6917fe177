package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreshold(t *testing.T) {
	testCases := []struct {
		participants int
		want         int
	}{
		{participants: 0, want: 1},
		{participants: 1, want: 1},
		{participants: 2, want: 1},
		{participants: 3, want: 1},
		{participants: 4, want: 2},
		{participants: 5, want: 2},
		{participants: 10, want: 5},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Threshold(tc.participants), "participants=%d", tc.participants)
	}
}

func newChallenge(names ...string) Challenge {
	c := Challenge{ID: "1", Name: "早起"}
	for _, n := range names {
		c.Participants = append(c.Participants, NewParticipant(n))
	}
	return c
}

func TestParticipant_Submit(t *testing.T) {
	p := NewParticipant("alice")
	p.Submit("2024-05-01", "跑了 5 公里", true)
	sub, ok := p.Submission("2024-05-01")
	require.True(t, ok)
	sub.UpsertVote(Vote{Voter: "bob", Vote: VoteAccept})
	sub.Status = StatusAccepted
	sub.PointsAwarded = true

	p.Submit("2024-05-01", "https://img.example.com/run.png", false)
	require.Len(t, p.Submissions, 1)
	assert.Equal(t, Submission{
		Date:          "2024-05-01",
		Proof:         "https://img.example.com/run.png",
		IsText:        false,
		Status:        StatusPending,
		Votes:         []Vote{},
		PointsAwarded: true,
	}, p.Submissions[0])

	p.Submit("2024-05-02", "跑了 3 公里", true)
	assert.Len(t, p.Submissions, 2)
}

func TestSubmission_UpsertVote(t *testing.T) {
	sub := Submission{}
	sub.UpsertVote(Vote{Voter: "bob", Vote: VoteAccept})
	sub.UpsertVote(Vote{Voter: "carol", Vote: VoteAccept})
	sub.UpsertVote(Vote{Voter: "bob", Vote: VoteReject})
	assert.Equal(t, []Vote{
		{Voter: "bob", Vote: VoteReject},
		{Voter: "carol", Vote: VoteAccept},
	}, sub.Votes)
}

func TestChallenge_UpdateSubmissionStatus(t *testing.T) {
	testCases := []struct {
		name         string
		participants []string
		votes        []Vote
		awarded      bool
		wantStatus   SubmissionStatus
		wantPoints   int
		wantAwarded  bool
	}{
		{
			name:         "三人_一票通过",
			participants: []string{"alice", "bob", "carol"},
			votes:        []Vote{{Voter: "bob", Vote: VoteAccept}},
			wantStatus:   StatusAccepted,
			wantPoints:   1,
			wantAwarded:  true,
		},
		{
			name:         "三人_一票拒绝",
			participants: []string{"alice", "bob", "carol"},
			votes:        []Vote{{Voter: "bob", Vote: VoteReject}},
			wantStatus:   StatusRejected,
		},
		{
			name:         "三人_通过优先于拒绝",
			participants: []string{"alice", "bob", "carol"},
			votes: []Vote{
				{Voter: "bob", Vote: VoteReject},
				{Voter: "carol", Vote: VoteAccept},
			},
			wantStatus:  StatusAccepted,
			wantPoints:  1,
			wantAwarded: true,
		},
		{
			name:         "四人_票数不够",
			participants: []string{"alice", "bob", "carol", "dave"},
			votes:        []Vote{{Voter: "bob", Vote: VoteAccept}},
			wantStatus:   StatusPending,
		},
		{
			name:         "四人_两票通过",
			participants: []string{"alice", "bob", "carol", "dave"},
			votes: []Vote{
				{Voter: "bob", Vote: VoteAccept},
				{Voter: "carol", Vote: VoteAccept},
			},
			wantStatus:  StatusAccepted,
			wantPoints:  1,
			wantAwarded: true,
		},
		{
			name:         "已经加过分_不重复加分",
			participants: []string{"alice", "bob", "carol"},
			votes:        []Vote{{Voter: "bob", Vote: VoteAccept}},
			awarded:      true,
			wantStatus:   StatusAccepted,
		},
		{
			name:         "已经加过分_变成拒绝也不扣分",
			participants: []string{"alice", "bob", "carol"},
			votes:        []Vote{{Voter: "bob", Vote: VoteReject}},
			awarded:      true,
			wantStatus:   StatusRejected,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newChallenge(tc.participants...)
			p, ok := c.Participant("alice")
			require.True(t, ok)
			p.Submit("2024-05-01", "proof", true)
			sub, _ := p.Submission("2024-05-01")
			sub.PointsAwarded = tc.awarded
			for _, v := range tc.votes {
				sub.UpsertVote(v)
			}
			awarded := c.UpdateSubmissionStatus(p, sub)
			assert.Equal(t, tc.wantAwarded, awarded)
			assert.Equal(t, tc.wantStatus, c.Participants[0].Submissions[0].Status)
			assert.Equal(t, tc.wantPoints, c.Participants[0].Points)
			assert.True(t, c.Participants[0].Submissions[0].PointsAwarded || !tc.wantAwarded)
		})
	}
}

func TestChallenge_PointsAwardedOnce(t *testing.T) {
	c := newChallenge("alice", "bob", "carol", "dave", "erin")
	p, _ := c.Participant("alice")
	p.Submit("2024-05-01", "proof", true)
	sub, _ := p.Submission("2024-05-01")
	sequence := []Vote{
		{Voter: "bob", Vote: VoteAccept},
		{Voter: "carol", Vote: VoteAccept},
		{Voter: "dave", Vote: VoteReject},
		{Voter: "bob", Vote: VoteReject},
		{Voter: "erin", Vote: VoteReject},
		{Voter: "bob", Vote: VoteAccept},
		{Voter: "dave", Vote: VoteAccept},
	}
	for _, v := range sequence {
		sub.UpsertVote(v)
		c.UpdateSubmissionStatus(p, sub)
	}
	assert.Equal(t, 1, c.Participants[0].Points)
	assert.Equal(t, StatusAccepted, c.Participants[0].Submissions[0].Status)
}

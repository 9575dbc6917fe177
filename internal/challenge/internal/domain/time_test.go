package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		endDate string
		now     time.Time
		want    TimeRemaining
	}{
		{
			name:    "正好到期",
			endDate: "2024-05-01",
			now:     now,
			want:    TimeRemaining{Expired: true},
		},
		{
			name:    "已经过期",
			endDate: "2024-04-20",
			now:     now,
			want:    TimeRemaining{Expired: true},
		},
		{
			name:    "一天两小时三分四秒",
			endDate: "2024-05-02",
			now:     now.Add(-(2*time.Hour + 3*time.Minute + 4*time.Second)),
			want:    TimeRemaining{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		},
		{
			name:    "不足一秒向下取整",
			endDate: "2024-05-01",
			now:     now.Add(-1500 * time.Millisecond),
			want:    TimeRemaining{Seconds: 1},
		},
		{
			name:    "完整时间戳",
			endDate: "2024-05-01T10:30:00Z",
			now:     now,
			want:    TimeRemaining{Hours: 10, Minutes: 30},
		},
		{
			name:    "无法解析的日期视为到期",
			endDate: "next friday",
			now:     now,
			want:    TimeRemaining{Expired: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewTimeRemaining(tc.endDate, tc.now))
		})
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	challenges := []Challenge{
		{ID: "1", EndDate: "2024-05-02"},
		{ID: "2", EndDate: "2024-05-01"},
		{ID: "3", EndDate: "2024-04-01"},
		{ID: "4", EndDate: "2025-01-01"},
		{ID: "5", EndDate: "not a date"},
		{ID: "6", EndDate: "2024-05-01T12:00:00Z"},
	}
	active, completed := Partition(challenges, now)
	ids := func(cs []Challenge) []string {
		res := make([]string, 0, len(cs))
		for _, c := range cs {
			res = append(res, c.ID)
		}
		return res
	}
	assert.Equal(t, []string{"1", "4"}, ids(active))
	assert.Equal(t, []string{"2", "3", "5", "6"}, ids(completed))
	assert.Len(t, challenges, len(active)+len(completed))
}

func TestToday(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	assert.Equal(t, "2024-04-30", Today(time.Date(2024, 5, 1, 7, 0, 0, 0, shanghai)))
	assert.Equal(t, "2024-05-01", Today(time.Date(2024, 5, 1, 9, 0, 0, 0, shanghai)))
}

func TestFormatCreatedAt(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	assert.Equal(t, "2024-05-01T00:00:00.000Z", FormatCreatedAt(time.Date(2024, 5, 1, 8, 0, 0, 0, shanghai)))
	assert.Equal(t, "2024-05-02T09:30:00.123Z", FormatCreatedAt(time.Date(2024, 5, 2, 9, 30, 0, 123456789, time.UTC)))
}

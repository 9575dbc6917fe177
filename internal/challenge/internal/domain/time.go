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

const day = 24 * time.Hour

// ParseDate 把 YYYY-MM-DD 解释为当天 UTC 零点，也兼容完整的 RFC3339 时间
func ParseDate(date string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, date); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// createdAtLayout 和浏览器 Date.toISOString 的输出保持一致
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatCreatedAt 统一转成 UTC，毫秒精度
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

// Today 当前的 UTC 日期
func Today(now time.Time) string {
	return now.UTC().Format(time.DateOnly)
}

type TimeRemaining struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Expired bool
}

// NewTimeRemaining 计算 now 到 endDate 还剩多少时间，
// 已经到期或者 endDate 无法解析的时候 Expired 为 true，其余字段都是 0
func NewTimeRemaining(endDate string, now time.Time) TimeRemaining {
	end, ok := ParseDate(endDate)
	if !ok {
		return TimeRemaining{Expired: true}
	}
	diff := end.Sub(now)
	if diff <= 0 {
		return TimeRemaining{Expired: true}
	}
	return TimeRemaining{
		Days:    int64(diff / day),
		Hours:   int64(diff % day / time.Hour),
		Minutes: int64(diff % time.Hour / time.Minute),
		Seconds: int64(diff % time.Minute / time.Second),
	}
}

// IsActive 结束时间严格晚于 now 才算进行中
func (c *Challenge) IsActive(now time.Time) bool {
	end, ok := ParseDate(c.EndDate)
	return ok && end.After(now)
}

// Partition 把挑战分成进行中和已结束两组，保持原有顺序
func Partition(challenges []Challenge, now time.Time) (active, completed []Challenge) {
	active = make([]Challenge, 0, len(challenges))
	completed = make([]Challenge, 0, len(challenges))
	for _, c := range challenges {
		if c.IsActive(now) {
			active = append(active, c)
		} else {
			completed = append(completed, c)
		}
	}
	return active, completed
}

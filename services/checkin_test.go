package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestEvaluateCheckIn(t *testing.T) {
	loc := checkinZone(8)

	tests := []struct {
		name        string
		now         string
		last        string // empty means never checked in
		wantNewDay  bool
		wantReset   bool
	}{
		{
			name:       "first ever check-in",
			now:        "2024-03-10T12:00:00+08:00",
			wantNewDay: true,
			wantReset:  true,
		},
		{
			name: "same day repeat is a no-op",
			now:  "2024-03-10T23:59:00+08:00",
			last: "2024-03-10T00:01:00+08:00",
		},
		{
			name:       "next day continues the streak",
			now:        "2024-03-11T00:01:00+08:00",
			last:       "2024-03-10T23:59:00+08:00",
			wantNewDay: true,
		},
		{
			name:       "two day gap resets the streak",
			now:        "2024-03-12T09:00:00+08:00",
			last:       "2024-03-10T09:00:00+08:00",
			wantNewDay: true,
			wantReset:  true,
		},
		{
			name:       "week long gap resets the streak",
			now:        "2024-03-17T09:00:00+08:00",
			last:       "2024-03-10T09:00:00+08:00",
			wantNewDay: true,
			wantReset:  true,
		},
		{
			name: "boundary is the fixed zone not utc",
			// 2024-03-10T17:30Z is already 2024-03-11 01:30 in UTC+8.
			now:  "2024-03-11T01:30:00+08:00",
			last: "2024-03-11T00:10:00+08:00",
		},
		{
			name:       "utc timestamps convert before comparing",
			now:        "2024-03-10T17:30:00Z", // 03-11 in UTC+8
			last:       "2024-03-10T01:00:00+08:00",
			wantNewDay: true,
		},
		{
			name: "clock earlier than last login is a no-op",
			now:  "2024-03-09T12:00:00+08:00",
			last: "2024-03-10T12:00:00+08:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := mustTime(t, tt.now)
			var last *time.Time
			if tt.last != "" {
				ts := mustTime(t, tt.last)
				last = &ts
			}

			got := evaluateCheckIn(now, last, loc)
			assert.Equal(t, tt.wantNewDay, got.NewDay, "NewDay")
			assert.Equal(t, tt.wantReset, got.ResetStreak, "ResetStreak")
		})
	}
}

func TestApplyCheckIn(t *testing.T) {
	loc := checkinZone(8)
	const reward = 2

	checkInAt := func(activity *models.Activity, point *models.Point, at string) {
		now := mustTime(t, at).In(loc)
		d := evaluateCheckIn(now, activity.LastLoginTime, loc)
		applyCheckIn(activity, point, d, now, reward)
	}

	activity := models.Activity{UserID: 1}
	point := models.Point{UserID: 1}

	// First ever check-in.
	checkInAt(&activity, &point, "2024-03-10T09:00:00+08:00")
	assert.True(t, activity.LoggedIn)
	assert.Equal(t, 1, activity.LoginStreak)
	assert.Equal(t, 1, activity.TotalLogins)
	require.NotNil(t, activity.LastLoginTime)
	assert.Equal(t, 2, point.LoginAmount)

	// Same-day repeat changes nothing.
	checkInAt(&activity, &point, "2024-03-10T23:30:00+08:00")
	assert.Equal(t, 1, activity.LoginStreak)
	assert.Equal(t, 1, activity.TotalLogins)
	assert.Equal(t, 2, point.LoginAmount)
	assert.Equal(t, "2024-03-10", activity.LastLoginTime.Format("2006-01-02"))

	// Next day extends the streak.
	checkInAt(&activity, &point, "2024-03-11T00:05:00+08:00")
	assert.Equal(t, 2, activity.LoginStreak)
	assert.Equal(t, 2, activity.TotalLogins)
	assert.Equal(t, 4, point.LoginAmount)

	// Two silent days reset the streak but never the totals.
	checkInAt(&activity, &point, "2024-03-14T12:00:00+08:00")
	assert.Equal(t, 1, activity.LoginStreak)
	assert.Equal(t, 3, activity.TotalLogins)
	assert.Equal(t, 6, point.LoginAmount)
	assert.True(t, activity.LoggedIn)
}

func TestApplyCheckInLeavesLastActionTimeAlone(t *testing.T) {
	loc := checkinZone(8)
	stamped := mustTime(t, "2024-03-09T20:00:00+08:00")

	activity := models.Activity{UserID: 1, LastActionTime: stamped}
	point := models.Point{UserID: 1}

	now := mustTime(t, "2024-03-10T09:00:00+08:00").In(loc)
	d := evaluateCheckIn(now, activity.LastLoginTime, loc)
	require.True(t, d.NewDay)
	applyCheckIn(&activity, &point, d, now, 2)

	// last_action_time tracks generic activity, not check-ins.
	assert.True(t, activity.LastActionTime.Equal(stamped))
}

func TestApplyCheckInNoDecisionIsNoOp(t *testing.T) {
	loc := checkinZone(8)
	last := mustTime(t, "2024-03-10T09:00:00+08:00")

	activity := models.Activity{
		UserID:        1,
		LoggedIn:      true,
		LoginStreak:   4,
		TotalLogins:   9,
		LastLoginTime: &last,
	}
	point := models.Point{UserID: 1, LoginAmount: 18}

	applyCheckIn(&activity, &point, checkInDecision{}, mustTime(t, "2024-03-10T10:00:00+08:00").In(loc), 2)

	assert.Equal(t, 4, activity.LoginStreak)
	assert.Equal(t, 9, activity.TotalLogins)
	assert.Equal(t, 18, point.LoginAmount)
	assert.True(t, activity.LastLoginTime.Equal(last))
}

func TestCalendarDate(t *testing.T) {
	loc := checkinZone(8)

	ts := mustTime(t, "2024-03-10T17:30:00Z")
	day := calendarDate(ts, loc)

	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 11, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}

func TestCheckinZone(t *testing.T) {
	loc := checkinZone(8)
	_, offset := mustTime(t, "2024-03-10T00:00:00Z").In(loc).Zone()
	assert.Equal(t, 8*3600, offset)
}

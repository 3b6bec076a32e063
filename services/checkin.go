package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/config"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
	"github.com/Wonderwall-Inc/golfin-miniapp-server/utils"
)

// Calendar days are decided in a fixed zone, not server-local time: the
// product day boundary is UTC+8 regardless of where the server runs.
func checkinZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC+%d", offsetHours), offsetHours*3600)
}

// CheckInResult is the combined snapshot returned to the caller whether
// or not the call mutated anything.
type CheckInResult struct {
	Activity models.Activity `json:"activity"`
	Point    models.Point    `json:"point"`
	// NewDay reports whether this call counted as a fresh calendar day.
	NewDay bool `json:"new_day"`
}

// CheckInService evaluates daily check-ins: decides whether "today" is a
// new login day, updates streak/login counters and awards points. It is
// the only writer of the activity login fields.
type CheckInService struct {
	db     *gorm.DB
	rdb    *redis.Client
	loc    *time.Location
	reward int
	now    func() time.Time
}

// NewCheckInService wires the service from configuration.
func NewCheckInService(db *gorm.DB) *CheckInService {
	cfg := config.Get()
	return &CheckInService{
		db:     db,
		rdb:    utils.GetRedis(),
		loc:    checkinZone(cfg.CheckinUTCOffsetHours),
		reward: cfg.CheckinRewardPoints,
		now:    time.Now,
	}
}

// checkInDecision is the outcome of the pure day-boundary rule.
type checkInDecision struct {
	NewDay      bool
	ResetStreak bool
}

// evaluateCheckIn applies the day-boundary rule in loc. A new day is a
// first-ever check-in or a strictly later calendar date; the streak
// resets when the gap exceeds one calendar day. An earlier date (clock
// skew) counts as "not a new day".
func evaluateCheckIn(now time.Time, last *time.Time, loc *time.Location) checkInDecision {
	if last == nil {
		return checkInDecision{NewDay: true, ResetStreak: true}
	}

	today := calendarDate(now, loc)
	lastDay := calendarDate(*last, loc)

	if !today.After(lastDay) {
		return checkInDecision{}
	}

	gapDays := int(today.Sub(lastDay).Hours() / 24)
	return checkInDecision{NewDay: true, ResetStreak: gapDays > 1}
}

// calendarDate truncates t to midnight of its calendar day in loc.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// applyCheckIn advances the activity and point rows per the decision.
// Only the login fields and the login ledger move; last_action_time is
// generic-activity state owned by the activity update endpoint and is
// left alone here.
func applyCheckIn(activity *models.Activity, point *models.Point, d checkInDecision, now time.Time, reward int) {
	if !d.NewDay {
		return
	}
	activity.LoggedIn = true
	activity.TotalLogins++
	if d.ResetStreak {
		activity.LoginStreak = 1
	} else {
		activity.LoginStreak++
	}
	loginTime := now
	activity.LastLoginTime = &loginTime
	point.LoginAmount += reward
}

// CheckIn performs the daily check-in for userID and returns the
// combined activity/point snapshot. A repeat call on the same calendar
// day is a no-op returning the current state. Both rows update in one
// transaction or not at all.
func (s *CheckInService) CheckIn(ctx context.Context, userID uint) (*CheckInResult, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrValidation)
	}

	now := s.now().In(s.loc)

	// Idempotency guard: first writer of the (user, calendar day) pair
	// wins; a concurrent duplicate reads the committed state instead of
	// double-incrementing. The row lock below still serializes writers
	// when redis is unavailable.
	guarded, guardKey := s.acquireDayGuard(ctx, userID, now)

	result := &CheckInResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity models.Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: activity for user %d", ErrNotFound, userID)
			}
			return err
		}

		var point models.Point
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&point).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: point for user %d", ErrNotFound, userID)
			}
			return err
		}

		decision := evaluateCheckIn(now, activity.LastLoginTime, s.loc)
		if !decision.NewDay || !guarded {
			result.Activity = activity
			result.Point = point
			return nil
		}

		applyCheckIn(&activity, &point, decision, now, s.reward)

		if err := tx.Save(&activity).Error; err != nil {
			return err
		}
		if err := tx.Save(&point).Error; err != nil {
			return err
		}

		result.Activity = activity
		result.Point = point
		result.NewDay = true
		return nil
	})
	if err != nil {
		// Release the day guard so a client retry is not locked out of a
		// day it never got credit for.
		if guarded {
			s.releaseDayGuard(ctx, guardKey)
		}
		return nil, err
	}

	s.renderZone(result)
	return result, nil
}

func (s *CheckInService) acquireDayGuard(ctx context.Context, userID uint, now time.Time) (bool, string) {
	key := fmt.Sprintf("checkin:%d:%s", userID, now.Format("2006-01-02"))
	if s.rdb == nil {
		return true, key
	}
	ok, err := s.rdb.SetNX(ctx, key, 1, 48*time.Hour).Result()
	if err != nil {
		// Redis down degrades to row-lock-only serialization.
		return true, key
	}
	return ok, key
}

func (s *CheckInService) releaseDayGuard(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, key).Err()
}

// renderZone normalizes returned timestamps to the fixed reference zone.
func (s *CheckInService) renderZone(r *CheckInResult) {
	if r.Activity.LastLoginTime != nil {
		t := r.Activity.LastLoginTime.In(s.loc)
		r.Activity.LastLoginTime = &t
	}
	r.Activity.LastActionTime = r.Activity.LastActionTime.In(s.loc)
	r.Activity.CreatedAt = r.Activity.CreatedAt.In(s.loc)
	r.Activity.UpdatedAt = r.Activity.UpdatedAt.In(s.loc)
	r.Point.CreatedAt = r.Point.CreatedAt.In(s.loc)
	r.Point.UpdatedAt = r.Point.UpdatedAt.In(s.loc)
}

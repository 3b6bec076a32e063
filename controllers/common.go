package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/middleware"
)

// parseSkipLimit parses offset pagination query values. Limit defaults
// to 15 and is capped at 100.
func parseSkipLimit(skipStr, limitStr string) (int, int) {
	skip := 0
	limit := 15
	if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
		skip = s
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return skip, limit
}

// parseUintQuery parses a numeric query value, returning 0 when absent
// or malformed.
func parseUintQuery(value string) uint {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

// parseUserIDs splits a comma separated user_ids query value.
func parseUserIDs(csv string) []uint {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		if id := parseUintQuery(p); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

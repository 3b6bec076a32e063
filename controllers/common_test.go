package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkipLimit(t *testing.T) {
	tests := []struct {
		name      string
		skip      string
		limit     string
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults", wantSkip: 0, wantLimit: 15},
		{name: "explicit values", skip: "30", limit: "50", wantSkip: 30, wantLimit: 50},
		{name: "limit over cap falls back to default", skip: "0", limit: "500", wantSkip: 0, wantLimit: 15},
		{name: "negative skip ignored", skip: "-5", limit: "20", wantSkip: 0, wantLimit: 20},
		{name: "garbage ignored", skip: "abc", limit: "xyz", wantSkip: 0, wantLimit: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := parseSkipLimit(tt.skip, tt.limit)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseUserIDs(t *testing.T) {
	assert.Nil(t, parseUserIDs(""))
	assert.Nil(t, parseUserIDs("   "))
	assert.Equal(t, []uint{1, 2, 3}, parseUserIDs("1,2,3"))
	assert.Equal(t, []uint{7}, parseUserIDs("7"))
	// malformed entries are skipped, valid ones kept
	assert.Equal(t, []uint{4, 9}, parseUserIDs("4,abc,9,0"))
}

func TestParseUintQuery(t *testing.T) {
	assert.Equal(t, uint(12), parseUintQuery("12"))
	assert.Equal(t, uint(12), parseUintQuery(" 12 "))
	assert.Equal(t, uint(0), parseUintQuery(""))
	assert.Equal(t, uint(0), parseUintQuery("-4"))
	assert.Equal(t, uint(0), parseUintQuery("abc"))
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, 5, clampNonNegative(5))
	assert.Equal(t, 0, clampNonNegative(0))
	assert.Equal(t, 0, clampNonNegative(-3))
}

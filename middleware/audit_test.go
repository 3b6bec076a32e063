package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
)

func TestResourceOf(t *testing.T) {
	assert.Equal(t, "user", resourceOf("/api/v1/user/create"))
	assert.Equal(t, "game-character", resourceOf("/api/v1/game-character/stats/update"))
	assert.Equal(t, "record", resourceOf("/api/v1/record"))
	assert.Equal(t, "", resourceOf("/health"))
	assert.Equal(t, "", resourceOf("/api/v2/user/create"))
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, models.RecordActionCreate, actionFor("POST"))
	assert.Equal(t, models.RecordActionUpdate, actionFor("PUT"))
	assert.Equal(t, models.RecordActionUpdate, actionFor("PATCH"))
	assert.Equal(t, models.RecordActionDelete, actionFor("DELETE"))
	assert.Equal(t, "", actionFor("GET"))
	assert.Equal(t, "", actionFor("OPTIONS"))
}

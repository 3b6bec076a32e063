package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(botToken string, req TelegramAuthPayload) string {
	values := map[string]string{
		"auth_date": fmt.Sprintf("%d", req.AuthDate),
		"id":        req.ID,
	}
	if req.Username != "" {
		values["username"] = req.Username
	}
	if req.FirstName != "" {
		values["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		values["last_name"] = req.LastName
	}
	if req.PhotoURL != "" {
		values["photo_url"] = req.PhotoURL
	}

	pairs := make([]string, 0, len(values))
	for k, v := range values {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	digest := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, digest[:])
	h.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyTelegramSignature(t *testing.T) {
	const botToken = "123456:test-bot-token"

	payload := TelegramAuthPayload{
		ID:        "987654321",
		Username:  "golfer",
		FirstName: "Golf",
		AuthDate:  1714400000,
	}
	payload.Hash = signPayload(botToken, payload)

	assert.True(t, VerifyTelegramSignature(botToken, payload))

	t.Run("tampered payload fails", func(t *testing.T) {
		tampered := payload
		tampered.Username = "impostor"
		assert.False(t, VerifyTelegramSignature(botToken, tampered))
	})

	t.Run("wrong token fails", func(t *testing.T) {
		assert.False(t, VerifyTelegramSignature("other-token", payload))
	})

	t.Run("empty token fails", func(t *testing.T) {
		assert.False(t, VerifyTelegramSignature("", payload))
	})

	t.Run("malformed hash fails", func(t *testing.T) {
		bad := payload
		bad.Hash = "not-hex"
		assert.False(t, VerifyTelegramSignature(botToken, bad))
	})
}

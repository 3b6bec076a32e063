package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// TelegramAuthPayload is the data the Telegram login widget hands the
// mini-app at launch, plus the signature to verify.
type TelegramAuthPayload struct {
	ID        string `json:"id" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" binding:"required"`
	Hash      string `json:"hash" binding:"required"`
}

// VerifyTelegramSignature checks the HMAC-SHA256 signature of a login
// payload against the bot token, per the Telegram login widget spec.
func VerifyTelegramSignature(botToken string, req TelegramAuthPayload) bool {
	if botToken == "" {
		return false
	}

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
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	digest := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, digest[:])
	h.Write([]byte(dataCheckString))
	expected := h.Sum(nil)

	provided, err := hex.DecodeString(strings.TrimSpace(req.Hash))
	if err != nil {
		return false
	}
	return hmac.Equal(expected, provided)
}

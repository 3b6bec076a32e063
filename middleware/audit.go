package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wonderwall-Inc/golfin-miniapp-server/models"
)

var auditTables = map[string]string{
	"user":           models.RecordTableUser,
	"point":          models.RecordTablePoint,
	"activity":       models.RecordTableActivity,
	"friend":         models.RecordTableFriend,
	"social-media":   models.RecordTableSocialMedia,
	"game-character": models.RecordTableGameCharacter,
}

// AuditRecorder appends a record row after every successful mutating API
// call. Best effort: a failed insert never fails the request.
func AuditRecorder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action := actionFor(c.Request.Method)
		if action == "" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		table, ok := auditTables[resourceOf(c.Request.URL.Path)]
		if !ok {
			return
		}

		_ = db.Create(&models.Record{
			UserID:  auditUserID(c),
			Action:  action,
			Table:   table,
			TableID: auditTableID(c),
		}).Error
	}
}

func actionFor(method string) string {
	switch method {
	case "POST":
		return models.RecordActionCreate
	case "PUT", "PATCH":
		return models.RecordActionUpdate
	case "DELETE":
		return models.RecordActionDelete
	default:
		return ""
	}
}

// resourceOf extracts the resource segment from /api/v1/<resource>/...
func resourceOf(path string) string {
	const prefix = "/api/v1/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func auditUserID(c *gin.Context) uint {
	if v, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return uint(id)
		}
	}
	return 0
}

func auditTableID(c *gin.Context) uint {
	if raw := c.Param("id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return uint(id)
		}
	}
	return 0
}

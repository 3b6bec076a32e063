package utils

import "github.com/gin-gonic/gin"

// CodeOK is the business code of every successful response. Error codes
// group by family: 400xx-407xx client errors per resource (auth, user,
// friend, point, activity, game-character, social-media, record), 404xx
// lookups that found nothing, 50xxx server-side failures.
const CodeOK = 0

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, 200, CodeOK, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

package response

import "github.com/gin-gonic/gin"

const (
	MsgUserNotFound     = "User not found!"
	MsgMalformedRequest = "Malformed request body!"
	MsgInternalServer   = "Internal server error!"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, httpStatus int, body interface{}) {
	c.JSON(httpStatus, body)
}

func Failure(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

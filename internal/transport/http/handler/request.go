package handler

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errMalformedBody = errors.New("request body is not a JSON object")

// bindObject decodes the body into dst. Anything but a JSON object is rejected,
// including an empty body and a bare null.
func bindObject(c *gin.Context, dst interface{}) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return errMalformedBody
	}
	return binding.JSON.BindBody(raw, dst)
}

// userIDParam reports false when the path segment cannot name a user.
func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// unsetGreeting stands in for an unset variable.
const unsetGreeting = "None"

type GreetingHandler struct {
	envKey string
}

func NewGreetingHandler(envKey string) *GreetingHandler {
	return &GreetingHandler{envKey: envKey}
}

func (h *GreetingHandler) Hello(c *gin.Context) {
	name, ok := os.LookupEnv(h.envKey)
	if !ok {
		name = unsetGreeting
	}
	c.String(http.StatusOK, "Hello, %s", name)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"keyboards-api/internal/app"
	"keyboards-api/internal/model"
	"keyboards-api/internal/transport/http/response"
)

type KeyboardHandler struct {
	service *app.KeyboardService
}

func NewKeyboardHandler(service *app.KeyboardService) *KeyboardHandler {
	return &KeyboardHandler{service: service}
}

func (h *KeyboardHandler) List(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		response.Failure(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	keyboards, err := h.service.ListKeyboards(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"keyboards": keyboards})
}

// Add parses the body before looking up the owner, so a malformed body is
// reported even for an unknown user.
func (h *KeyboardHandler) Add(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		response.Failure(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	var fields model.KeyboardFields
	if err := bindObject(c, &fields); err != nil {
		response.Failure(c, http.StatusBadRequest, response.MsgMalformedRequest)
		return
	}

	keyboard, err := h.service.AddKeyboard(c.Request.Context(), userID, fields)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, keyboard)
}

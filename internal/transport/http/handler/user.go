package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"keyboards-api/internal/app"
	"keyboards-api/internal/model"
	"keyboards-api/internal/transport/http/response"
)

type UserHandler struct {
	service *app.KeyboardService
}

func NewUserHandler(service *app.KeyboardService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		response.Failure(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var fields model.UserFields
	if err := bindObject(c, &fields); err != nil {
		response.Failure(c, http.StatusBadRequest, response.MsgMalformedRequest)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), fields)
	if err != nil {
		internalError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		response.Failure(c, http.StatusNotFound, response.MsgUserNotFound)
	default:
		internalError(c, err)
	}
}

func internalError(c *gin.Context, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	response.Failure(c, http.StatusInternalServerError, response.MsgInternalServer)
}

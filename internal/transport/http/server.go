package http

import (
	"github.com/gin-gonic/gin"

	appsvc "keyboards-api/internal/app"
	"keyboards-api/internal/bootstrap"
	"keyboards-api/internal/repository"
	"keyboards-api/internal/transport/http/handler"
	"keyboards-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	// Trailing slashes are part of the route; /users is not /users/.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS(app.Config.CORS))

	var opts []appsvc.Option
	if app.UserCache != nil {
		opts = append(opts, appsvc.WithUserCache(app.UserCache))
	}
	if app.EventPublisher != nil {
		opts = append(opts, appsvc.WithEventPublisher(app.EventPublisher))
	}
	service := appsvc.NewKeyboardService(
		repository.NewUserRepository(app.DB),
		repository.NewKeyboardRepository(app.DB),
		opts...,
	)

	greetingHandler := handler.NewGreetingHandler(app.Config.App.GreetingEnv)
	userHandler := handler.NewUserHandler(service)
	keyboardHandler := handler.NewKeyboardHandler(service)

	router.GET("/", greetingHandler.Hello)

	users := router.Group("/users")
	users.GET("/", userHandler.List)
	users.POST("/", userHandler.Create)
	users.GET("/:id/", userHandler.Get)
	users.GET("/:id/keyboards/", keyboardHandler.List)
	users.POST("/:id/keyboards/", keyboardHandler.Add)

	return router
}

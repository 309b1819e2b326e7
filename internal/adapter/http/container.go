package http

import (
	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/internal/core/telemetry"
)

type Container struct {
	UserRepo   port.UserRepository
	TaskRepo   port.TaskRepository
	TokenCodec port.TokenCodec

	AuthService port.AuthService
	TaskService port.TaskService

	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler

	Authenticator gin.HandlerFunc
}

func NewContainer(userRepo port.UserRepository, taskRepo port.TaskRepository, codec port.TokenCodec, metrics *telemetry.AppMetrics) *Container {
	authSvc := service.NewAuthService(userRepo, codec)
	taskSvc := service.NewTaskService(taskRepo)

	return &Container{
		UserRepo:   userRepo,
		TaskRepo:   taskRepo,
		TokenCodec: codec,

		AuthService: authSvc,
		TaskService: taskSvc,

		AuthHandler: handler.NewAuthHandler(authSvc, metrics),
		TaskHandler: handler.NewTaskHandler(taskSvc, metrics),

		Authenticator: middleware.BearerAuth(codec, userRepo),
	}
}

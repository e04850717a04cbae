package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/polyglot-microservices-org/todo-service/internal/services"
)

type Handler interface {
	HandleCreateTodo(c *gin.Context)
	HandleGetTodos(c *gin.Context)
	HandleGetTodo(c *gin.Context)
	HandleUpdateTodo(c *gin.Context)
	HandleDeleteTodo(c *gin.Context)
	HandleHealthz(c *gin.Context)

	HandleRequestIDMiddleware(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	todos  services.TodoService
}

func New(
	logger zerolog.Logger,
	todoService services.TodoService,
) Handler {
	return &handlerImpl{
		logger: logger,
		todos:  todoService,
	}
}

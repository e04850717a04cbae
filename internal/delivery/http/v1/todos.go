package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyglot-microservices-org/todo-service/internal/models"
	"github.com/polyglot-microservices-org/todo-service/internal/services"
)

type todoResponse struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

func newTodoResponse(todo *models.Todo) todoResponse {
	return todoResponse{
		ID:        todo.ID.Hex(),
		Task:      todo.Task,
		Completed: todo.Completed,
	}
}

type createTodoRequest struct {
	Task string `json:"task" binding:"required"`
}

func (h *handlerImpl) HandleCreateTodo(c *gin.Context) {
	var req createTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	todo, err := h.todos.CreateTodo(c, req.Task)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create todo")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().
		Str("todo_id", todo.ID.Hex()).
		Msg("created todo")
	c.JSON(http.StatusCreated, newTodoResponse(todo))
}

func (h *handlerImpl) HandleGetTodos(c *gin.Context) {
	todos, err := h.todos.GetTodos(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch todos")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]todoResponse, len(todos))
	for i, todo := range todos {
		response[i] = newTodoResponse(todo)
	}

	h.logger.Info().
		Int("count", len(response)).
		Msg("fetched todos")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTodo(c *gin.Context) {
	todoID := c.Param("id")
	if todoID == "" {
		h.logger.Error().Msg("no todo id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	todo, err := h.todos.GetTodoByID(c, todoID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("todo_id", todoID).
			Msg("failed to fetch todo")
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			abort(c, newNotFoundError(services.ErrTodoNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("todo_id", todoID).
		Msg("fetched todo")
	c.JSON(http.StatusOK, newTodoResponse(todo))
}

type updateTodoRequest struct {
	Task      *string `json:"task,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleUpdateTodo(c *gin.Context) {
	todoID := c.Param("id")
	if todoID == "" {
		h.logger.Error().Msg("no todo id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var req updateTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	if req.Task == nil && req.Completed == nil {
		h.logger.Error().Msg("no fields to update")
		abort(c, newBadRequestError(services.ErrNoFieldsToUpdate.Error()))
		return
	}

	err = h.todos.UpdateTodo(c, services.UpdateTodoParams{
		ID:        todoID,
		Task:      req.Task,
		Completed: req.Completed,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("todo_id", todoID).
			Msg("failed to update todo")
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			abort(c, newNotFoundError(services.ErrTodoNotFound.Error()))
		case errors.Is(err, services.ErrNoFieldsToUpdate):
			abort(c, newBadRequestError(services.ErrNoFieldsToUpdate.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("todo_id", todoID).
		Msg("updated todo")
	c.JSON(http.StatusOK, gin.H{"message": "todo updated successfully"})
}

func (h *handlerImpl) HandleDeleteTodo(c *gin.Context) {
	todoID := c.Param("id")
	if todoID == "" {
		h.logger.Error().Msg("no todo id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	err := h.todos.DeleteTodo(c, todoID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("todo_id", todoID).
			Msg("failed to delete todo")
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			abort(c, newNotFoundError(services.ErrTodoNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("todo_id", todoID).
		Msg("deleted todo")
	c.JSON(http.StatusOK, gin.H{"message": "todo deleted successfully"})
}

package services

import (
	"context"
	"errors"

	"github.com/polyglot-microservices-org/todo-service/internal/models"
)

var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

type TodoService interface {
	// CreateTodo inserts a new todo with the given task and
	// completed set to false. The store assigns the id.
	CreateTodo(ctx context.Context, task string) (*models.Todo, error)

	// GetTodos returns every stored todo in store order.
	//
	// An empty store yields an empty slice, not an error.
	GetTodos(ctx context.Context) ([]*models.Todo, error)

	// GetTodoByID looks up a single todo by its hex id.
	//
	// It returns ErrTodoNotFound if no todo matches the id or
	// the id is not a valid store identifier.
	GetTodoByID(ctx context.Context, id string) (*models.Todo, error)

	// UpdateTodo applies a partial update: only non-nil params
	// fields are written, the rest keep their prior values.
	//
	// It returns ErrNoFieldsToUpdate if every params field is nil
	// and ErrTodoNotFound if no todo matches the id.
	UpdateTodo(ctx context.Context, params UpdateTodoParams) error

	// DeleteTodo removes the todo with the given hex id.
	//
	// It returns ErrTodoNotFound if no todo matches the id.
	DeleteTodo(ctx context.Context, id string) error
}

type UpdateTodoParams struct {
	ID        string
	Task      *string
	Completed *bool
}

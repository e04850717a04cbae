package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/polyglot-microservices-org/todo-service/internal/models"
)

const todosCollection = "todos"

type todoServiceImpl struct {
	logger     zerolog.Logger
	collection *mongo.Collection
}

func NewTodoService(
	logger zerolog.Logger,
	db *mongo.Database,
) TodoService {
	return &todoServiceImpl{
		logger:     logger,
		collection: db.Collection(todosCollection),
	}
}

func (s *todoServiceImpl) CreateTodo(ctx context.Context, task string) (*models.Todo, error) {
	todo := &models.Todo{
		Task:      task,
		Completed: false,
	}

	result, err := s.collection.InsertOne(ctx, todo)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert todo")
		return nil, err
	}

	todoID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		err = fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
		s.logger.Error().
			Err(err).
			Msg("failed to read inserted todo id")
		return nil, err
	}
	todo.ID = todoID
	s.logger.Debug().
		Str("todo_id", todo.ID.Hex()).
		Msg("inserted todo")

	s.logger.Info().
		Str("todo_id", todo.ID.Hex()).
		Msg("created todo")
	return todo, nil
}

func (s *todoServiceImpl) GetTodos(ctx context.Context) ([]*models.Todo, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select todos")
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	todos := make([]*models.Todo, 0)
	for cursor.Next(ctx) {
		todo := new(models.Todo)
		err = cursor.Decode(todo)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to decode todo")
			return nil, err
		}
		todos = append(todos, todo)
	}

	err = cursor.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over cursor")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(todos)).
		Msg("selected todos")

	s.logger.Info().
		Int("count", len(todos)).
		Msg("todos fetched")
	return todos, nil
}

func (s *todoServiceImpl) GetTodoByID(ctx context.Context, id string) (*models.Todo, error) {
	todoID, err := s.parseTodoID(id)
	if err != nil {
		return nil, err
	}

	todo := new(models.Todo)
	err = s.collection.FindOne(ctx, bson.M{"_id": todoID}).Decode(todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Error().
				Str("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Str("todo_id", id).
			Msg("failed to select todo by id")
		return nil, err
	}
	s.logger.Debug().
		Str("todo_id", id).
		Msg("selected todo by id")

	s.logger.Info().
		Str("todo_id", id).
		Msg("todo found")
	return todo, nil
}

func (s *todoServiceImpl) UpdateTodo(ctx context.Context, params UpdateTodoParams) error {
	if params.Task == nil && params.Completed == nil {
		s.logger.Error().
			Str("todo_id", params.ID).
			Msg("no fields to update")
		return ErrNoFieldsToUpdate
	}

	todoID, err := s.parseTodoID(params.ID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if params.Task != nil {
		fields["task"] = *params.Task
	}
	if params.Completed != nil {
		fields["completed"] = *params.Completed
	}

	result, err := s.collection.UpdateOne(
		ctx,
		bson.M{"_id": todoID},
		bson.M{"$set": fields},
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("todo_id", params.ID).
			Msg("failed to update todo")
		return err
	}
	if result.MatchedCount == 0 {
		s.logger.Error().
			Str("todo_id", params.ID).
			Msg("todo not found")
		return ErrTodoNotFound
	}
	s.logger.Debug().
		Str("todo_id", params.ID).
		Int64("modified", result.ModifiedCount).
		Msg("updated todo")

	s.logger.Info().
		Str("todo_id", params.ID).
		Msg("updated todo")
	return nil
}

func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id string) error {
	todoID, err := s.parseTodoID(id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": todoID})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("todo_id", id).
			Msg("failed to delete todo")
		return err
	}
	if result.DeletedCount == 0 {
		s.logger.Error().
			Str("todo_id", id).
			Msg("todo not found")
		return ErrTodoNotFound
	}
	s.logger.Debug().
		Str("todo_id", id).
		Msg("deleted todo")

	s.logger.Info().
		Str("todo_id", id).
		Msg("deleted todo")
	return nil
}

// A malformed id cannot match any stored todo,
// so it is reported the same way as an absent one.
func (s *todoServiceImpl) parseTodoID(id string) (primitive.ObjectID, error) {
	todoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("todo_id", id).
			Msg("malformed todo id")
		return primitive.NilObjectID, ErrTodoNotFound
	}
	return todoID, nil
}

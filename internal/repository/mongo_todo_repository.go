package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

type mongoTodoRepository struct {
	coll *mongo.Collection
}

// NewMongoTodoRepository builds a repository over the todos collection.
func NewMongoTodoRepository(db *mongo.Database) TodoRepository {
	return &mongoTodoRepository{coll: db.Collection(TodosCollection)}
}

func (r *mongoTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if err := prepareTodoCreate(todo); err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, todo); err != nil {
		return apperrors.Storage(err, "create todo")
	}
	return nil
}

func (r *mongoTodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	if err := prepareTodoUpdate(todo); err != nil {
		return err
	}
	set := bson.M{
		"title":       todo.Title,
		"description": todo.Description,
		"status":      todo.Status,
		"updatedAt":   todo.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, todo.ID, bson.M{"$set": set})
	if err != nil {
		return apperrors.Storage(err, "update todo")
	}
	if res.MatchedCount == 0 {
		return errTodoNotFound
	}
	return nil
}

func (r *mongoTodoRepository) Delete(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		return nil, translateMongoTodoError(err, "delete todo")
	}
	return &todo, nil
}

func (r *mongoTodoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		return nil, translateMongoTodoError(err, "fetch todo")
	}
	return &todo, nil
}

func (r *mongoTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	return r.find(ctx, bson.M{}, "fetch todos")
}

func (r *mongoTodoRepository) ListByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	return r.find(ctx, bson.M{"userId": userID}, "fetch todos for user")
}

func (r *mongoTodoRepository) find(ctx context.Context, filter bson.M, op string) ([]model.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Storage(err, op)
	}
	todos := []model.Todo{}
	if err := cur.All(ctx, &todos); err != nil {
		return nil, apperrors.Storage(err, op)
	}
	return todos, nil
}

func translateMongoTodoError(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errTodoNotFound
	}
	return apperrors.Storage(err, op)
}

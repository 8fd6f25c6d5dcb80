package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Store groups the repositories of one backing database together with the
// function that releases its connection.
type Store struct {
	Users UserRepository
	Todos TodoRepository

	close func(ctx context.Context) error
}

// NewGormStore builds a Store over a GORM connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users: NewUserRepository(db),
		Todos: NewTodoRepository(db),
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewMongoStore builds a Store over a MongoDB database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users: NewMongoUserRepository(db),
		Todos: NewMongoTodoRepository(db),
		close: db.Client().Disconnect,
	}
}

// NewMemoryStore builds an empty process-local Store.
func NewMemoryStore() *Store {
	mem := newMemoryDB()
	return &Store{
		Users: &memoryUserRepository{db: mem},
		Todos: &memoryTodoRepository{db: mem},
		close: func(context.Context) error { return nil },
	}
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

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

// Collection names in the document store.
const (
	UsersCollection = "users"
	TodosCollection = "todos"
)

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a repository over the users collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if err := prepareUserCreate(user); err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return translateMongoUserError(err, "register user")
	}
	return nil
}

func (r *mongoUserRepository) Update(ctx context.Context, user *model.User) error {
	if err := prepareUserUpdate(user); err != nil {
		return err
	}
	set := bson.M{
		"username":  user.Username,
		"email":     user.Email,
		"password":  user.Password,
		"role":      user.Role,
		"updatedAt": user.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, user.ID, bson.M{"$set": set})
	if err != nil {
		return translateMongoUserError(err, "update user")
	}
	if res.MatchedCount == 0 {
		return errUserNotFound
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Storage(err, "delete user")
	}
	if res.DeletedCount == 0 {
		return errUserNotFound
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongoUserError(err, "fetch user")
	}
	return &user, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Storage(err, "fetch users")
	}
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperrors.Storage(err, "fetch users")
	}
	return users, nil
}

func translateMongoUserError(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return errUserNotFound
	case mongo.IsDuplicateKeyError(err):
		return errEmailConflict
	default:
		return apperrors.Storage(err, op)
	}
}

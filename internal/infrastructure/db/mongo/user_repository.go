package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teamatlas/people-directory/internal/core/domain"
)

const usersCollection = "users"

// MongoUserRepository persists the user collection as a whole-document
// snapshot: LoadAll reads every record in id order, ReplaceAll rewrites the
// collection. The wipe-and-insert pair is not transactional; the store treats
// the snapshot write as atomic-enough, matching the write-through contract.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) LoadAll(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer cur.Close(ctx)

	users := []*domain.User{}
	for cur.Next(ctx) {
		var u domain.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, &u)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) ReplaceAll(ctx context.Context, users []*domain.User) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("replace users: clear: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	docs := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = u
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("replace users: insert: %w", err)
	}
	return nil
}

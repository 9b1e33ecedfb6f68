package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository implements application.UserRepository using MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new Mongo-backed user repository.
func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName)}
}

// Search returns users whose handle or display name contains keyword.
func (r *UserRepository) Search(ctx context.Context, keyword string, limit int) ([]domain.User, error) {
	keyword = regexp.QuoteMeta(strings.TrimSpace(keyword))
	filter := bson.M{"$or": []bson.M{
		{"handle": bson.M{"$regex": keyword, "$options": "i"}},
		{"displayName": bson.M{"$regex": keyword, "$options": "i"}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "followers", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var doc UserDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, mapUserDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func mapUserDocument(doc UserDocument) domain.User {
	createdAt := time.Time{}
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}

	followers := doc.Followers
	if followers < 0 {
		followers = 0
	}

	return domain.User{
		ID:          doc.ID.Hex(),
		Handle:      strings.TrimSpace(doc.Handle),
		DisplayName: strings.TrimSpace(doc.DisplayName),
		AvatarURL:   doc.AvatarURL,
		Bio:         doc.Bio,
		Followers:   followers,
		Tastes:      append([]string{}, doc.Tastes...),
		CreatedAt:   createdAt,
	}
}

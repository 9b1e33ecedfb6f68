package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostDocument is the MongoDB schema of one engagement record. Counter fields
// are omitempty on write but always decode to zero values, so the mapping
// layer only has to clamp negatives, not chase missing fields.
type PostDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	AuthorID      string             `bson:"authorId,omitempty"`
	Restaurant    string             `bson:"restaurant"`
	City          string             `bson:"city,omitempty"`
	Dish          string             `bson:"dish,omitempty"`
	Caption       string             `bson:"caption,omitempty"`
	Price         *float64           `bson:"price,omitempty"`
	Tags          []string           `bson:"tags,omitempty"`
	Likes         int                `bson:"likes,omitempty"`
	CommentsCount int                `bson:"commentsCount,omitempty"`
	Saves         int                `bson:"saves,omitempty"`
	VideoURL      string             `bson:"videoURL,omitempty"`
	CreatedAt     *time.Time         `bson:"createdAt,omitempty"`
}

// UserDocument is the MongoDB schema of one account, limited to what search
// and the taste-preference plumbing need.
type UserDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Handle      string             `bson:"handle"`
	DisplayName string             `bson:"displayName,omitempty"`
	AvatarURL   string             `bson:"avatarURL,omitempty"`
	Bio         string             `bson:"bio,omitempty"`
	Followers   int                `bson:"followers,omitempty"`
	Tastes      []string           `bson:"tastes,omitempty"`
	CreatedAt   *time.Time         `bson:"createdAt,omitempty"`
}

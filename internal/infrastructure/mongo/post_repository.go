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

// PostRepository implements application.PostRepository using MongoDB. It is
// the data-source collaborator of the ranking core: every post it returns has
// passed the single normalization pass, so downstream scoring never sees
// negative counters or untrimmed identity strings.
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a new Mongo-backed post repository.
func NewPostRepository(db *mongo.Database, collectionName string) *PostRepository {
	return &PostRepository{collection: db.Collection(collectionName)}
}

// Recent returns posts created within the trailing window, newest first.
func (r *PostRepository) Recent(ctx context.Context, windowDays, limit int) ([]domain.Post, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	filter := bson.M{"createdAt": bson.M{"$gte": since}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// ForPlace returns posts for one restaurant, matched by exact name.
func (r *PostRepository) ForPlace(ctx context.Context, restaurant string, limit int) ([]domain.Post, error) {
	filter := bson.M{"restaurant": strings.TrimSpace(restaurant)}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// InCity returns posts whose city matches case-insensitively.
func (r *PostRepository) InCity(ctx context.Context, city string, limit int) ([]domain.Post, error) {
	filter := bson.M{"city": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(strings.TrimSpace(city)) + "$",
		"$options": "i",
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// Search returns posts whose restaurant, dish, or caption contains keyword.
func (r *PostRepository) Search(ctx context.Context, keyword string, limit int) ([]domain.Post, error) {
	keyword = regexp.QuoteMeta(strings.TrimSpace(keyword))
	filter := bson.M{"$or": []bson.M{
		{"restaurant": bson.M{"$regex": keyword, "$options": "i"}},
		{"dish": bson.M{"$regex": keyword, "$options": "i"}},
		{"caption": bson.M{"$regex": keyword, "$options": "i"}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

func (r *PostRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]domain.Post, 0)
	for cursor.Next(ctx) {
		var doc PostDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		posts = append(posts, mapPostDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func mapPostDocument(doc PostDocument) domain.Post {
	createdAt := time.Time{}
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}

	price := 0.0
	hasPrice := false
	if doc.Price != nil {
		price = *doc.Price
		hasPrice = true
	}

	return domain.NormalizePost(domain.Post{
		ID:            doc.ID.Hex(),
		AuthorID:      doc.AuthorID,
		Restaurant:    doc.Restaurant,
		City:          doc.City,
		Dish:          doc.Dish,
		Caption:       doc.Caption,
		Price:         price,
		HasPrice:      hasPrice,
		Tags:          append([]string{}, doc.Tags...),
		Likes:         doc.Likes,
		CommentsCount: doc.CommentsCount,
		Saves:         doc.Saves,
		VideoURL:      doc.VideoURL,
		CreatedAt:     createdAt,
	})
}

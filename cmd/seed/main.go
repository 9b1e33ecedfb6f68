// Command seed populates a development database with sample users and posts
// so the explore feeds and search have material to rank. Generation is
// deterministic for a fixed -seed value.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitemap/bitemap-services/api/internal/config"
	mongodoc "github.com/bitemap/bitemap-services/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	userCount       int
	postCount       int
	dropCollections bool
	randomSeed      int64
}

var sampleCities = []string{"Austin", "Portland", "Chicago", "Denver", "Seattle"}

var samplePlaces = []struct {
	name string
	city string
}{
	{"Taqueria El Norte", "Austin"},
	{"The Taco Stand", "Austin"},
	{"Ramen Koji", "Portland"},
	{"Sushi Aoi", "Portland"},
	{"Smoke & Oak BBQ", "Austin"},
	{"Luna's Pizza", "Chicago"},
	{"Deep Dish Society", "Chicago"},
	{"Golden Hour Brunch", "Denver"},
	{"Pike Street Oysters", "Seattle"},
	{"Noodle Archive", "Seattle"},
}

var sampleDishes = []string{
	"birria tacos", "al pastor", "tonkotsu ramen", "spicy miso ramen",
	"omakase set", "brisket plate", "margherita", "deep dish classic",
	"ricotta pancakes", "oyster sampler", "dan dan noodles", "shoyu ramen",
}

var sampleTags = []string{
	"tacos", "ramen", "sushi", "bbq", "pizza", "brunch", "seafood",
	"noodles", "date night", "late night", "casual", "patio",
}

func main() {
	opts := parseFlags()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	posts := db.Collection(cfg.PostCollection)
	users := db.Collection(cfg.UserCollection)

	if opts.dropCollections {
		for name, coll := range map[string]*mongo.Collection{
			cfg.PostCollection: posts,
			cfg.UserCollection: users,
		} {
			if err := coll.Drop(ctx); err != nil {
				log.Fatalf("failed to drop collection %s: %v", name, err)
			}
			log.Printf("dropped collection %s", name)
		}
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	userDocs := buildUsers(rng, opts.userCount)
	if len(userDocs) > 0 {
		if _, err := users.InsertMany(ctx, userDocs); err != nil {
			log.Fatalf("failed to insert users: %v", err)
		}
		log.Printf("inserted %d users", len(userDocs))
	}

	postDocs := buildPosts(rng, userDocs, opts.postCount)
	if len(postDocs) > 0 {
		if _, err := posts.InsertMany(ctx, postDocs); err != nil {
			log.Fatalf("failed to insert posts: %v", err)
		}
		log.Printf("inserted %d posts", len(postDocs))
	}
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.userCount, "users", 25, "number of users to create")
	flag.IntVar(&opts.postCount, "posts", 300, "number of posts to create")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", 1, "random seed for deterministic output")
	flag.Parse()
	return opts
}

func buildUsers(rng *rand.Rand, count int) []any {
	docs := make([]any, 0, count)
	now := time.Now()
	for i := 0; i < count; i++ {
		handle := fmt.Sprintf("foodie_%03d", i+1)
		createdAt := now.AddDate(0, 0, -rng.Intn(365))
		tastes := pickSome(rng, sampleTags[:8], 1+rng.Intn(3))
		docs = append(docs, mongodoc.UserDocument{
			ID:          primitive.NewObjectID(),
			Handle:      handle,
			DisplayName: fmt.Sprintf("Foodie %03d", i+1),
			Followers:   rng.Intn(5000),
			Tastes:      tastes,
			CreatedAt:   &createdAt,
		})
	}
	return docs
}

func buildPosts(rng *rand.Rand, userDocs []any, count int) []any {
	docs := make([]any, 0, count)
	now := time.Now()
	for i := 0; i < count; i++ {
		place := samplePlaces[rng.Intn(len(samplePlaces))]
		dish := sampleDishes[rng.Intn(len(sampleDishes))]
		createdAt := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)

		authorID := ""
		if len(userDocs) > 0 {
			authorID = userDocs[rng.Intn(len(userDocs))].(mongodoc.UserDocument).ID.Hex()
		}

		var price *float64
		if rng.Intn(3) > 0 {
			p := float64(8 + rng.Intn(40))
			price = &p
		}

		docs = append(docs, mongodoc.PostDocument{
			ID:            primitive.NewObjectID(),
			AuthorID:      authorID,
			Restaurant:    place.name,
			City:          place.city,
			Dish:          dish,
			Caption:       fmt.Sprintf("had the %s at %s", dish, place.name),
			Price:         price,
			Tags:          pickSome(rng, sampleTags, 1+rng.Intn(4)),
			Likes:         rng.Intn(400),
			CommentsCount: rng.Intn(60),
			Saves:         rng.Intn(120),
			VideoURL:      fmt.Sprintf("https://media.bitemap.dev/posts/%04d.mp4", i+1),
			CreatedAt:     &createdAt,
		})
	}
	return docs
}

func pickSome(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	indexes := rng.Perm(len(pool))[:n]
	picked := make([]string, 0, n)
	for _, i := range indexes {
		picked = append(picked, pool[i])
	}
	return picked
}

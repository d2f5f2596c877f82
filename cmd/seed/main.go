package main

import (
	"context"
	"log"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/config"
	"github.com/pubudubandara/portfolio-new/internal/db"
	"github.com/pubudubandara/portfolio-new/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedSkill struct {
	Name  string
	Order int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	defaultSkills := []seedSkill{
		{Name: "JavaScript", Order: 0},
		{Name: "TypeScript", Order: 1},
		{Name: "React", Order: 2},
		{Name: "Next.js", Order: 3},
		{Name: "Node.js", Order: 4},
		{Name: "MongoDB", Order: 5},
		{Name: "Tailwind CSS", Order: 6},
		{Name: "Docker", Order: 7},
	}

	now := time.Now().UTC()
	for _, skill := range defaultSkills {
		filter := bson.M{"name": skill.Name}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID().Hex(),
				"name":       skill.Name,
				"image_url":  "",
				"image_id":   "",
				"order":      skill.Order,
				"created_at": now,
				"updated_at": now,
			},
		}
		if _, err := cols.Skills.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed skill %s: %v", skill.Name, err)
		}
	}
	log.Printf("seeded %d skills", len(defaultSkills))

	if cfg.SeedAdminPassword == "" {
		log.Println("SEED_ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	count, err := cols.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		log.Println("admin account already exists, skipping")
		return
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatal(err)
	}

	user := models.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     cfg.SeedAdminUser,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		CreatedAt:    now,
	}
	if _, err := cols.Users.InsertOne(ctx, user); err != nil {
		log.Fatal(err)
	}
	log.Printf("created admin account %q", user.Username)
}

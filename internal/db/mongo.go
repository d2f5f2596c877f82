package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Skills        *mongo.Collection
	Projects      *mongo.Collection
	Certificates  *mongo.Collection
	Contributions *mongo.Collection
	Users         *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Skills:        db.Collection("skills"),
		Projects:      db.Collection("projects"),
		Certificates:  db.Collection("certificates"),
		Contributions: db.Collection("contributions"),
		Users:         db.Collection("users"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	// Public lists sort on (order, created_at); an index keeps that cheap even
	// though the collections stay small.
	for _, col := range []*mongo.Collection{cols.Skills, cols.Projects, cols.Certificates} {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}},
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = cols.Contributions.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	})
	return err
}

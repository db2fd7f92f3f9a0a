package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"viralpack/models"
)

type PackRepository struct {
	col *mongo.Collection
}

func NewPackRepository(db *mongo.Database) *PackRepository {
	return &PackRepository{col: db.Collection("packs")}
}

func (r *PackRepository) Insert(ctx context.Context, pack models.Pack) error {
	if pack.GeneratedAt.IsZero() {
		pack.GeneratedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, pack)
	return err
}

func (r *PackRepository) FindByPackID(ctx context.Context, packID string) (*models.Pack, error) {
	var pack models.Pack
	if err := r.col.FindOne(ctx, bson.M{"pack_id": packID}).Decode(&pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

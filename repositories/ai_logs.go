package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"viralpack/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

func (r *AILogRepository) InsertMany(ctx context.Context, logs []models.AILog) error {
	if len(logs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(logs))
	now := time.Now()
	for _, l := range logs {
		if l.RequestedAt.IsZero() {
			l.RequestedAt = now
		}
		docs = append(docs, l)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viralpack/producer"
)

// Pack stores one generated content pack for later retrieval/analytics
// Collection: packs
type Pack struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	PackID        string                 `bson:"pack_id" json:"pack_id"`
	RequestID     string                 `bson:"request_id" json:"request_id"`
	SchemaVersion string                 `bson:"schema_version" json:"schema_version"`
	Input         producer.CampaignInput `bson:"input" json:"input"`
	Output        producer.Buckets       `bson:"output" json:"output"`
	GeneratedAt   time.Time              `bson:"generated_at" json:"generated_at"`
}

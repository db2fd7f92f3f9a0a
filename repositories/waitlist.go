package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"viralpack/models"
)

type WaitlistRepository struct {
	col *mongo.Collection
}

func NewWaitlistRepository(db *mongo.Database) *WaitlistRepository {
	return &WaitlistRepository{col: db.Collection("waitlist")}
}

// Insert adds one waitlist entry. A duplicate email hits the unique index;
// callers decide whether duplicates are an error.
func (r *WaitlistRepository) Insert(ctx context.Context, entry models.WaitlistEntry) error {
	if entry.JoinedAt.IsZero() {
		entry.JoinedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// IsDuplicate reports whether err is the unique-index violation for an
// already-joined email.
func (r *WaitlistRepository) IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gridboard/internal/dashboard/model"
)

// Revision records are append-only and read-only after creation.

func (r *MongoRepository) EnsureRevisionIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "dashboard_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_dashboard_revisions"),
		},
	}
	_, err := r.Revisions.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) AppendRevision(ctx context.Context, rev *model.DashboardRevision) error {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	if rev.Revision == 0 {
		count, err := r.Revisions.CountDocuments(ctx, bson.M{"dashboard_id": rev.DashboardID})
		if err != nil {
			return err
		}
		rev.Revision = int(count) + 1
	}
	_, err := r.Revisions.InsertOne(ctx, rev)
	return err
}

func (r *MongoRepository) ListRevisions(ctx context.Context, dashboardID string, limit int64) ([]*model.DashboardRevision, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.Revisions.Find(ctx, bson.M{"dashboard_id": dashboardID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.DashboardRevision
	for cursor.Next(ctx) {
		var rev model.DashboardRevision
		if err := cursor.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, &rev)
	}
	return out, cursor.Err()
}

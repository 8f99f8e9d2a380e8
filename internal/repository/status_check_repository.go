package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hellodg123/ShipReward.in/internal/domain"
)

const statusChecksCollection = "status_checks"

// statusListLimit caps how many records a single list call returns.
const statusListLimit = 1000

// StatusCheckRepository persists the append-only status log.
type StatusCheckRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context) ([]domain.StatusCheck, error)
}

type statusCheckRepository struct {
	db *mongo.Database
}

// NewStatusCheckRepository returns a MongoDB-backed implementation.
func NewStatusCheckRepository(db *mongo.Database) StatusCheckRepository {
	return &statusCheckRepository{db: db}
}

func (r *statusCheckRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	_, err := r.db.Collection(statusChecksCollection).InsertOne(ctx, check)
	return err
}

func (r *statusCheckRepository) List(ctx context.Context) ([]domain.StatusCheck, error) {
	cursor, err := r.db.Collection(statusChecksCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checks := make([]domain.StatusCheck, 0)
	for cursor.Next(ctx) {
		var check domain.StatusCheck
		if err := cursor.Decode(&check); err != nil {
			return nil, err
		}
		checks = append(checks, check)
		if len(checks) >= statusListLimit {
			break
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return checks, nil
}

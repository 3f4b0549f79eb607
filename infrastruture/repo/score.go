package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrScoreNotFound = errors.New("score not found")

// ScoreRepo persists finished runs.
type ScoreRepo struct {
	collection *mongo.Collection
}

// NewScoreRepo creates a ScoreRepo over the given collection.
func NewScoreRepo(client *mongo.Client, dbName, collectionName string) *ScoreRepo {
	return &ScoreRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the per-player history index.
func (s *ScoreRepo) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}},
	})
	return err
}

// Save inserts a run. Scores are immutable once written.
func (s *ScoreRepo) Save(score *dmn.Score) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, score); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	return nil
}

// ByID retrieves a run by its ID.
func (s *ScoreRepo) ByID(id uuid.UUID) (*dmn.Score, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var score dmn.Score
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&score); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	return &score, nil
}

// ByUser lists a player's runs, newest first.
func (s *ScoreRepo) ByUser(userID uuid.UUID, limit int64) ([]*dmn.Score, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	defer cursor.Close(ctx)

	scores := make([]*dmn.Score, 0)
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	return scores, nil
}

package stores

import (
	"context"
	"errors"
	"fmt"

	"cityvoice-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// IssueStore is the persistence boundary for issues. The verification
// workflow and the HTTP layer only ever see this interface.
type IssueStore interface {
	GetByID(ctx context.Context, id string) (*models.Issue, error)
	List(ctx context.Context) ([]models.Issue, error)
	Insert(ctx context.Context, issue *models.Issue) error
	Update(ctx context.Context, issue *models.Issue) error
	Delete(ctx context.Context, id string) error
}

// MongoIssueStore stores issues in a MongoDB collection.
type MongoIssueStore struct {
	collection *mongo.Collection
}

func NewMongoIssueStore(collection *mongo.Collection) *MongoIssueStore {
	return &MongoIssueStore{collection: collection}
}

func (s *MongoIssueStore) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find issue %s: %w", id, err)
	}
	return &issue, nil
}

func (s *MongoIssueStore) List(ctx context.Context) ([]models.Issue, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return issues, nil
}

func (s *MongoIssueStore) Insert(ctx context.Context, issue *models.Issue) error {
	if _, err := s.collection.InsertOne(ctx, issue); err != nil {
		return fmt.Errorf("insert issue %s: %w", issue.ID, err)
	}
	return nil
}

func (s *MongoIssueStore) Update(ctx context.Context, issue *models.Issue) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": issue.ID}, issue)
	if err != nil {
		return fmt.Errorf("update issue %s: %w", issue.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoIssueStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete issue %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

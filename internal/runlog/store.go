// Package runlog records setup and export runs of the content CLI in MongoDB.
// Every function is a no-op when no Mongo URI is configured.
package runlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/landingpro/landing/backend/go-services/internal/database"
)

const collection = "content_runs"

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is the Mongo representation of one CLI run.
type Run struct {
	RunID      string    `bson:"runId" json:"runId"`
	Command    string    `bson:"command" json:"command"`
	SpaceID    string    `bson:"spaceId,omitempty" json:"spaceId,omitempty"`
	Status     string    `bson:"status" json:"status"`
	Created    []string  `bson:"created,omitempty" json:"created,omitempty"`
	Skipped    []string  `bson:"skipped,omitempty" json:"skipped,omitempty"`
	OutputPath string    `bson:"outputPath,omitempty" json:"outputPath,omitempty"`
	ObjectKey  string    `bson:"objectKey,omitempty" json:"objectKey,omitempty"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	StartedAt  time.Time `bson:"startedAt" json:"startedAt"`
	FinishedAt time.Time `bson:"finishedAt" json:"finishedAt"`
}

// NewRun starts a run record for command.
func NewRun(command, spaceID string) *Run {
	return &Run{RunID: uuid.NewString(), Command: command, SpaceID: spaceID, StartedAt: time.Now().UTC()}
}

// Finish stamps the end time and derives the status from err.
func (r *Run) Finish(err error) {
	r.FinishedAt = time.Now().UTC()
	r.Status = StatusOK
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
	}
}

// Store persists runs to MongoDB.
type Store struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (s Store) collection(ctx context.Context) (*mongo.Client, *mongo.Collection, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client, err := database.ConnectMongo(ctx, s.URI, timeout)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, client.Database(s.Database).Collection(collection), nil
}

// Save upserts a run by its id.
func (s Store) Save(ctx context.Context, r *Run) error {
	if s.URI == "" {
		return nil
	}
	client, col, err := s.collection(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, bson.M{"runId": r.RunID}, bson.M{"$set": r}, opts); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Load fetches a run by id. It returns nil when not found.
func (s Store) Load(ctx context.Context, runID string) (*Run, error) {
	if s.URI == "" {
		return nil, nil
	}
	client, col, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(ctx)

	var r Run
	if err := col.FindOne(ctx, bson.M{"runId": runID}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Recent lists the latest runs, newest first.
func (s Store) Recent(ctx context.Context, limit int64) ([]Run, error) {
	if s.URI == "" {
		return nil, nil
	}
	client, col, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(ctx)

	cur, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	var runs []Run
	if err := cur.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("decode runs: %w", err)
	}
	return runs, nil
}

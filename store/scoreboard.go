package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openepi/mpox-analytics-api/schema"
)

var ErrScoreboardNotFound = fmt.Errorf("scoreboard not found")

// Scoreboards - persisted priority snapshot operations
type Scoreboards interface {
	SaveScoreboard(scoreboard schema.Scoreboard) error
	GetScoreboard(datasetID string) (*schema.Scoreboard, error)
}

// SaveScoreboard upserts the priority snapshot of a dataset. A repeated
// refresh overwrites the previous snapshot.
func (m *mongoDB) SaveScoreboard(scoreboard schema.Scoreboard) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ScoreboardCollection)
	_, err := c.ReplaceOne(ctx,
		bson.M{"dataset_id": scoreboard.DatasetID},
		scoreboard,
		options.Replace().SetUpsert(true))
	return err
}

// GetScoreboard loads the priority snapshot of a dataset.
func (m *mongoDB) GetScoreboard(datasetID string) (*schema.Scoreboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ScoreboardCollection)

	var scoreboard schema.Scoreboard
	if err := c.FindOne(ctx, bson.M{"dataset_id": datasetID}).Decode(&scoreboard); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScoreboardNotFound
		}
		return nil, err
	}
	return &scoreboard, nil
}

package store

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openepi/mpox-analytics-api/schema"
)

// ReportRows - outbreak report row operations
type ReportRows interface {
	InsertRows(datasetID string, rows []schema.ReportRow) (int64, error)
	DeleteRows(datasetID string) (int64, error)
	ListRows(datasetID string, filter schema.RowFilter) ([]schema.ReportRow, error)
	FilterOptions(datasetID string) (*schema.FilterOptions, error)
}

// InsertRows writes a dataset's rows in one batch, stamping each row with
// the dataset ID.
func (m *mongoDB) InsertRows(datasetID string, rows []schema.ReportRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportRowCollection)

	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		row.DatasetID = datasetID
		docs = append(docs, row)
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return int64(len(result.InsertedIDs)), nil
}

// DeleteRows drops every row of a dataset, typically the one just replaced.
func (m *mongoDB) DeleteRows(datasetID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportRowCollection)
	result, err := c.DeleteMany(ctx, bson.M{"dataset_id": datasetID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// ListRows returns the filtered rows of a dataset ordered by country and
// report date.
func (m *mongoDB) ListRows(datasetID string, filter schema.RowFilter) ([]schema.ReportRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportRowCollection)

	cursor, err := c.Find(ctx, matchRowFilter(datasetID, filter),
		options.Find().SetSort(sortCountryDate()))
	if err != nil {
		return nil, err
	}

	rows := []schema.ReportRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FilterOptions enumerates the distinct filterable values of a dataset.
func (m *mongoDB) FilterOptions(datasetID string) (*schema.FilterOptions, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportRowCollection)
	query := bson.M{"dataset_id": datasetID}

	opts := schema.FilterOptions{}
	var err error
	if opts.Countries, err = m.distinctStrings(ctx, c, "country", query); err != nil {
		return nil, err
	}
	if opts.Clades, err = m.distinctStrings(ctx, c, "clade", query); err != nil {
		return nil, err
	}
	if opts.Notes, err = m.distinctStrings(ctx, c, "surveillance_notes", query); err != nil {
		return nil, err
	}

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageMatchRows(datasetID, schema.RowFilter{}),
		aggStageDateSpan(),
	})
	if err != nil {
		return nil, err
	}
	var spans []struct {
		Min *time.Time `bson:"min"`
		Max *time.Time `bson:"max"`
	}
	if err := cursor.All(ctx, &spans); err != nil {
		return nil, err
	}
	if len(spans) > 0 {
		opts.MinDate = spans[0].Min
		opts.MaxDate = spans[0].Max
	}

	return &opts, nil
}

func (m *mongoDB) distinctStrings(ctx context.Context, c *mongo.Collection, field string, query bson.M) ([]string, error) {
	raw, err := c.Distinct(ctx, field, query)
	if err != nil {
		return nil, err
	}

	values := []string{}
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

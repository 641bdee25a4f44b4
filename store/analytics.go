package store

import (
	"time"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/openepi/mpox-analytics-api/epi"
	"github.com/openepi/mpox-analytics-api/schema"
)

// analytics main datastore
type AnalyticsCore interface {
	Ping() error

	// Dataset
	ReplaceDataset(filename, uploadedBy string, rows []schema.ReportRow, issueCount int64) (*schema.Dataset, error)
	ActiveDataset() (*schema.Dataset, error)
	ListDatasets(limit int) ([]schema.Dataset, error)

	// Rows
	CurrentRows(filter schema.RowFilter) ([]schema.ReportRow, error)
	FilterOptions() (*schema.FilterOptions, error)

	// Scoreboard
	RefreshScoreboard(datasetID string) (*schema.Scoreboard, error)
	CurrentScoreboard() (*schema.Scoreboard, error)
}

// AnalyticsStore is an implementation of AnalyticsCore
type AnalyticsStore struct {
	ormDB *gorm.DB
	mongo MetricStore
}

func NewAnalyticsStore(ormDB *gorm.DB, mongo MetricStore) *AnalyticsStore {
	return &AnalyticsStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *AnalyticsStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// ReplaceDataset registers an upload as the new active dataset, writes its
// rows, and drops the rows of the dataset it replaces. The replaced rows are
// deleted after the new ones are written so reads never see an empty store.
func (s *AnalyticsStore) ReplaceDataset(filename, uploadedBy string, rows []schema.ReportRow, issueCount int64) (*schema.Dataset, error) {
	previous, err := s.ActiveDataset()
	if err != nil && err != ErrNoActiveDataset {
		return nil, err
	}

	dataset, err := s.registerDataset(filename, uploadedBy, int64(len(rows)), issueCount)
	if err != nil {
		return nil, err
	}

	if _, err := s.mongo.InsertRows(dataset.ID, rows); err != nil {
		return nil, err
	}

	if previous != nil {
		deleted, err := s.mongo.DeleteRows(previous.ID)
		if err != nil {
			// The new dataset is already live; stale rows are orphaned
			// under the replaced ID, not mixed into reads.
			log.WithField("prefix", mongoLogPrefix).WithError(err).
				WithField("dataset_id", previous.ID).Error("fail to delete replaced dataset rows")
		} else {
			log.WithField("prefix", mongoLogPrefix).
				WithField("dataset_id", previous.ID).
				WithField("deleted", deleted).Info("replaced dataset rows removed")
		}
	}

	return dataset, nil
}

// CurrentRows reads the filtered rows of the active dataset.
func (s *AnalyticsStore) CurrentRows(filter schema.RowFilter) ([]schema.ReportRow, error) {
	dataset, err := s.ActiveDataset()
	if err != nil {
		return nil, err
	}
	return s.mongo.ListRows(dataset.ID, filter)
}

// FilterOptions enumerates filter values of the active dataset.
func (s *AnalyticsStore) FilterOptions() (*schema.FilterOptions, error) {
	dataset, err := s.ActiveDataset()
	if err != nil {
		return nil, err
	}
	return s.mongo.FilterOptions(dataset.ID)
}

// RefreshScoreboard recomputes and persists the priority snapshot of a
// dataset from its full, unfiltered rows.
func (s *AnalyticsStore) RefreshScoreboard(datasetID string) (*schema.Scoreboard, error) {
	rows, err := s.mongo.ListRows(datasetID, schema.RowFilter{})
	if err != nil {
		return nil, err
	}

	scoreboard := schema.Scoreboard{
		DatasetID:  datasetID,
		ComputedAt: time.Now().UTC(),
		Weights:    epi.DefaultPriorityWeights(),
		Scores:     epi.Prioritize(epi.AggregateCountries(rows), epi.DefaultPriorityWeights()),
	}
	if err := s.mongo.SaveScoreboard(scoreboard); err != nil {
		return nil, err
	}
	return &scoreboard, nil
}

// CurrentScoreboard loads the priority snapshot of the active dataset.
func (s *AnalyticsStore) CurrentScoreboard() (*schema.Scoreboard, error) {
	dataset, err := s.ActiveDataset()
	if err != nil {
		return nil, err
	}
	return s.mongo.GetScoreboard(dataset.ID)
}

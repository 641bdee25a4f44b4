package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/openepi/mpox-analytics-api/schema"
)

var ErrNoActiveDataset = fmt.Errorf("no active dataset")

// registerDataset creates the registry record for a fresh upload and marks
// every previously active dataset as replaced, in one transaction.
func (s *AnalyticsStore) registerDataset(filename, uploadedBy string, rowCount, issueCount int64) (*schema.Dataset, error) {
	dataset := schema.Dataset{
		ID:         uuid.New().String(),
		Filename:   filename,
		RowCount:   rowCount,
		IssueCount: issueCount,
		Status:     schema.DatasetStatusActive,
		UploadedBy: uploadedBy,
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Model(&schema.Dataset{}).
		Where("status = ?", schema.DatasetStatusActive).
		Update("status", schema.DatasetStatusReplaced).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(&dataset).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &dataset, nil
}

// ActiveDataset returns the dataset currently serving reads.
func (s *AnalyticsStore) ActiveDataset() (*schema.Dataset, error) {
	var dataset schema.Dataset
	if err := s.ormDB.
		Where("status = ?", schema.DatasetStatusActive).
		Order("created_at desc").
		First(&dataset).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNoActiveDataset
		}
		return nil, err
	}
	return &dataset, nil
}

// ListDatasets returns upload history, newest first.
func (s *AnalyticsStore) ListDatasets(limit int) ([]schema.Dataset, error) {
	if limit <= 0 {
		limit = 20
	}

	datasets := []schema.Dataset{}
	if err := s.ormDB.
		Order("created_at desc").
		Limit(limit).
		Find(&datasets).Error; err != nil {
		return nil, err
	}
	return datasets, nil
}

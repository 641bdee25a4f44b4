package schema

import "time"

const (
	DatasetStatusActive   = "ACTIVE"
	DatasetStatusReplaced = "REPLACED"
)

// Dataset is the upload registry record kept in postgres. Report rows
// themselves live in mongo under the dataset ID; uploading a new file
// replaces the active dataset wholesale.
type Dataset struct {
	ID         string    `json:"id" gorm:"primary_key"`
	Filename   string    `json:"filename"`
	RowCount   int64     `json:"row_count"`
	IssueCount int64     `json:"issue_count"`
	Status     string    `json:"status"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (Dataset) TableName() string {
	return "datasets"
}

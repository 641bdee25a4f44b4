package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/openepi/mpox-analytics-api/epi"
	"github.com/openepi/mpox-analytics-api/schema"
)

var log = logrus.WithField("prefix", "ingest")

var (
	ErrEmptySheet        = fmt.Errorf("sheet has no header row")
	ErrUnsupportedFormat = fmt.Errorf("unsupported file format")
)

// RowIssue records a cell that could not be coerced. The cell is nulled and
// the row kept; issues surface in the data quality report.
type RowIssue struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Result is the outcome of decoding one uploaded sheet.
type Result struct {
	Rows           []schema.ReportRow
	Issues         []RowIssue
	MissingColumns []string
}

// dateLayouts in match order. Excel re-formats dates freely, so both ISO and
// US-style renderings are accepted.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
	"02 Jan 2006",
}

// Read decodes an uploaded outbreak report sheet, dispatching on the file
// extension. CSV and XLSX are the only accepted formats.
func Read(filename string, r io.Reader) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadCSV decodes a comma-separated sheet. The first record is the header.
func ReadCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}
	return parseRows(records[0], records[1:]), nil
}

// ReadXLSX decodes the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return parseRows(rows[0], rows[1:]), nil
}

func parseRows(header []string, records [][]string) *Result {
	matched := MatchHeader(header)
	result := &Result{
		Rows:           make([]schema.ReportRow, 0, len(records)),
		Issues:         []RowIssue{},
		MissingColumns: MissingColumns(matched),
	}

	_, hasCFR := claimedColumn(matched, ColCaseFatalityRate)

	for i, record := range records {
		if blankRecord(record) {
			continue
		}
		// Sheet row numbers are 1-based and row 1 is the header.
		rowNum := i + 2
		var row schema.ReportRow
		for idx, canonical := range matched {
			if idx >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[idx])
			if cell == "" {
				continue
			}
			if issue := setCell(&row, canonical, cell); issue != nil {
				issue.Row = rowNum
				result.Issues = append(result.Issues, *issue)
			}
		}
		if row.Country == "" {
			result.Issues = append(result.Issues, RowIssue{
				Row:    rowNum,
				Column: ColCountry,
				Reason: "missing country",
			})
			continue
		}
		if !hasCFR {
			row.CaseFatalityPct = epi.Percent(row.Deaths, row.ConfirmedCases)
		}
		row.Clade = schema.NormalizeClade(row.Clade)
		result.Rows = append(result.Rows, row)
	}

	if len(result.MissingColumns) > 0 {
		log.WithField("columns", result.MissingColumns).Warn("sheet is missing expected columns")
	}
	return result
}

// setCell coerces one cell into its field. A non-nil return means the cell
// was unusable and left null.
func setCell(row *schema.ReportRow, canonical, cell string) *RowIssue {
	switch canonical {
	case ColCountry:
		row.Country = cell
		return nil
	case ColClade:
		row.Clade = cell
		return nil
	case ColSurveillanceNotes:
		row.SurveillanceNotes = cell
		return nil
	case ColReportDate:
		at, err := parseDate(cell)
		if err != nil {
			return &RowIssue{Column: canonical, Value: cell, Reason: "unparseable date"}
		}
		row.ReportAt = at
		return nil
	}

	if !numericColumns[canonical] {
		return nil
	}
	v, err := parseNumber(cell)
	if err != nil {
		return &RowIssue{Column: canonical, Value: cell, Reason: "unparseable number"}
	}
	switch canonical {
	case ColConfirmedCases:
		row.ConfirmedCases = v
	case ColSuspectedCases:
		row.SuspectedCases = v
	case ColDeaths:
		row.Deaths = v
	case ColWeeklyNewCases:
		row.WeeklyNewCases = v
	case ColCaseFatalityRate:
		row.CaseFatalityPct = v
	case ColDoseAllocated:
		row.DoseAllocated = v
	case ColDoseDeployed:
		row.DoseDeployed = v
	case ColAdministered:
		row.Administered = v
	case ColCoverage:
		row.CoveragePct = v
	case ColSurveillanceSites:
		row.SurveillanceSites = v
	case ColTestingLabs:
		row.TestingLabs = v
	case ColTrainedCHWs:
		row.TrainedCHWs = v
	case ColDeployedCHWs:
		row.DeployedCHWs = v
	}
	return nil
}

func parseDate(cell string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("no layout matched %q", cell)
}

// parseNumber tolerates thousands separators and a trailing percent sign.
// "n/a" style placeholders are treated as empty rather than flagged.
func parseNumber(cell string) (*float64, error) {
	s := strings.TrimSpace(cell)
	switch strings.ToLower(s) {
	case "", "na", "n/a", "nan", "-", "--":
		return nil, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func claimedColumn(matched map[int]string, canonical string) (int, bool) {
	for idx, c := range matched {
		if c == canonical {
			return idx, true
		}
	}
	return 0, false
}

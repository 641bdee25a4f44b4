package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openepi/mpox-analytics-api/schema"
)

// matchRowFilter translates a row filter into a find/aggregation match
// document scoped to one dataset. All active conditions are ANDed and both
// date bounds are inclusive.
func matchRowFilter(datasetID string, filter schema.RowFilter) bson.M {
	match := bson.M{
		"dataset_id": datasetID,
	}

	if filter.Start != nil || filter.End != nil {
		dateCond := bson.M{}
		if filter.Start != nil {
			dateCond["$gte"] = *filter.Start
		}
		if filter.End != nil {
			dateCond["$lte"] = *filter.End
		}
		match["report_date"] = dateCond
	}

	if len(filter.Countries) > 0 {
		match["country"] = bson.M{"$in": filter.Countries}
	}
	if len(filter.Clades) > 0 {
		match["clade"] = bson.M{"$in": cladeTerms(filter.Clades)}
	}
	if len(filter.Notes) > 0 {
		match["surveillance_notes"] = bson.M{"$in": filter.Notes}
	}

	return match
}

// cladeTerms widens the Unknown bucket to match rows whose clade field was
// never populated. Rows written through ingestion are already normalized;
// the empty string covers documents written by other tools.
func cladeTerms(clades []string) bson.A {
	terms := bson.A{}
	for _, clade := range clades {
		normalized := schema.NormalizeClade(clade)
		terms = append(terms, normalized)
		if normalized == schema.UnknownClade {
			terms = append(terms, "")
		}
	}
	return terms
}

func aggStageMatchRows(datasetID string, filter schema.RowFilter) bson.M {
	return bson.M{"$match": matchRowFilter(datasetID, filter)}
}

// aggStageDateSpan collapses the selection into its report date range.
func aggStageDateSpan() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id": nil,
			"min": bson.M{"$min": "$report_date"},
			"max": bson.M{"$max": "$report_date"},
		},
	}
}

func sortCountryDate() bson.D {
	return bson.D{
		{Key: "country", Value: 1},
		{Key: "report_date", Value: 1},
	}
}

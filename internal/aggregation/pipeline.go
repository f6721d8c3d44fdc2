// Package aggregation builds the fixed report pipeline shape: filter by the
// dimension, group by a categorical key, project the key back to a named
// field and sort ascending by it.
package aggregation

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Accumulator operators supported in a group stage.
const (
	OpAvg   = "$avg"
	OpSum   = "$sum"
	OpFirst = "$first"
)

// Date parts usable with MatchDatePart.
const (
	Year  = "$year"
	Month = "$month"
)

// Accumulator computes one output field of the group stage.
type Accumulator struct {
	As     string // output field name
	Op     string // OpAvg, OpSum, OpFirst
	Source string // document field the operator reads
}

// GroupReport describes one report query.
type GroupReport struct {
	Match        bson.D
	GroupBy      string // document field to group on
	KeyAs        string // name the group key is projected to
	Accumulators []Accumulator
}

// MatchEqual filters documents whose field equals value literally.
func MatchEqual(field string, value any) bson.D {
	return bson.D{{Key: field, Value: value}}
}

// MatchDatePart filters documents whose date field falls in the given year or
// month (part is Year or Month).
func MatchDatePart(part, field string, value int) bson.D {
	return bson.D{{Key: "$expr", Value: bson.D{
		{Key: "$eq", Value: bson.A{
			bson.D{{Key: part, Value: "$" + field}},
			value,
		}},
	}}}
}

// Pipeline returns the match, group, project and sort stages.
func (r GroupReport) Pipeline() mongo.Pipeline {
	keyAs := r.KeyAs
	if keyAs == "" {
		keyAs = r.GroupBy
	}

	group := bson.D{{Key: "_id", Value: "$" + r.GroupBy}}
	project := bson.D{
		{Key: "_id", Value: 0},
		{Key: keyAs, Value: "$_id"},
	}
	for _, acc := range r.Accumulators {
		group = append(group, bson.E{Key: acc.As, Value: bson.D{{Key: acc.Op, Value: "$" + acc.Source}}})
		project = append(project, bson.E{Key: acc.As, Value: 1})
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: r.Match}},
		{{Key: "$group", Value: group}},
		{{Key: "$project", Value: project}},
		{{Key: "$sort", Value: bson.D{{Key: keyAs, Value: 1}}}},
	}
}

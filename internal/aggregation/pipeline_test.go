package aggregation

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestPipelineShape(t *testing.T) {
	report := GroupReport{
		Match:   MatchEqual("region", "North"),
		GroupBy: "salesperson",
		Accumulators: []Accumulator{
			{As: "totalSales", Op: OpSum, Source: "amount"},
		},
	}

	want := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "region", Value: "North"}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$salesperson"},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "salesperson", Value: "$_id"},
			{Key: "totalSales", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "salesperson", Value: 1}}}},
	}
	assert.Equal(t, want, report.Pipeline())
}

func TestMatchDatePart(t *testing.T) {
	got := MatchDatePart(Month, "date", 11)
	want := bson.D{{Key: "$expr", Value: bson.D{
		{Key: "$eq", Value: bson.A{bson.D{{Key: "$month", Value: "$date"}}, 11}},
	}}}
	assert.Equal(t, want, got)
}

func TestPipelineSortsUnsortedFixtures(t *testing.T) {
	day := func(y int, m time.Month) time.Time { return time.Date(y, m, 10, 0, 0, 0, 0, time.UTC) }
	docs := []bson.M{
		{"channel": "Retail", "rating": 4.0, "date": day(2023, time.March)},
		{"channel": "Email", "rating": 5.0, "date": day(2023, time.June)},
		{"channel": "Retail", "rating": 3.0, "date": day(2023, time.June)},
		{"channel": "Phone", "rating": 2.0, "date": day(2022, time.June)},
		{"channel": "Online", "rating": 4.5, "date": day(2023, time.January)},
		{"channel": "Email", "rating": 4.0, "date": day(2023, time.January)},
	}

	byYear := GroupReport{
		Match:        MatchDatePart(Year, "date", 2023),
		GroupBy:      "channel",
		Accumulators: []Accumulator{{As: "ratingAvg", Op: OpAvg, Source: "rating"}},
	}
	rows := evaluate(t, docs, byYear.Pipeline())
	assert.Equal(t, []bson.M{
		{"channel": "Email", "ratingAvg": 4.5},
		{"channel": "Online", "ratingAvg": 4.5},
		{"channel": "Retail", "ratingAvg": 3.5},
	}, rows)

	byMonth := byYear
	byMonth.Match = MatchDatePart(Month, "date", 6)
	rows = evaluate(t, docs, byMonth.Pipeline())
	assert.Equal(t, []bson.M{
		{"channel": "Email", "ratingAvg": 5.0},
		{"channel": "Phone", "ratingAvg": 2.0},
		{"channel": "Retail", "ratingAvg": 3.0},
	}, rows)

	none := byYear
	none.Match = MatchDatePart(Year, "date", 1999)
	assert.Empty(t, evaluate(t, docs, none.Pipeline()))
}

func TestPipelineFirstAccumulatorAndLiteralMatch(t *testing.T) {
	docs := []bson.M{
		{"salesperson": "Zoe", "product": "Laptop Pro 15", "amount": 1200.0},
		{"salesperson": "Adam", "product": "Laptop Pro 15", "amount": 1000.0},
		{"salesperson": "Zoe", "product": "Laptop Pro 15", "amount": 300.0},
		{"salesperson": "Mia", "product": "Laptop Pro 1", "amount": 50.0},
	}
	report := GroupReport{
		Match:   MatchEqual("product", "Laptop Pro 15"),
		GroupBy: "salesperson",
		Accumulators: []Accumulator{
			{As: "totalSales", Op: OpSum, Source: "amount"},
			{As: "product", Op: OpFirst, Source: "product"},
		},
	}

	assert.Equal(t, []bson.M{
		{"salesperson": "Adam", "totalSales": 1000.0, "product": "Laptop Pro 15"},
		{"salesperson": "Zoe", "totalSales": 1500.0, "product": "Laptop Pro 15"},
	}, evaluate(t, docs, report.Pipeline()))
}

// evaluate runs the subset of the aggregation language GroupReport emits
// against in-memory documents.
func evaluate(t *testing.T, docs []bson.M, pipeline mongo.Pipeline) []bson.M {
	t.Helper()
	out := docs
	for _, stage := range pipeline {
		require.Len(t, stage, 1)
		args, ok := stage[0].Value.(bson.D)
		require.True(t, ok, "stage %s", stage[0].Key)

		switch stage[0].Key {
		case "$match":
			out = evalMatch(t, out, args)
		case "$group":
			out = evalGroup(t, out, args)
		case "$project":
			out = evalProject(out, args)
		case "$sort":
			require.Len(t, args, 1)
			key := args[0].Key
			sort.SliceStable(out, func(i, j int) bool {
				return out[i][key].(string) < out[j][key].(string)
			})
		default:
			t.Fatalf("unsupported stage %s", stage[0].Key)
		}
	}
	return out
}

func evalMatch(t *testing.T, docs []bson.M, args bson.D) []bson.M {
	var out []bson.M
	for _, doc := range docs {
		keep := true
		for _, cond := range args {
			if cond.Key != "$expr" {
				keep = keep && doc[cond.Key] == cond.Value
				continue
			}
			eq := cond.Value.(bson.D)[0].Value.(bson.A)
			part := eq[0].(bson.D)[0]
			date := doc[part.Value.(string)[1:]].(time.Time)
			var got int
			switch part.Key {
			case Year:
				got = date.Year()
			case Month:
				got = int(date.Month())
			default:
				t.Fatalf("unsupported date part %s", part.Key)
			}
			keep = keep && got == eq[1].(int)
		}
		if keep {
			out = append(out, doc)
		}
	}
	return out
}

func evalGroup(t *testing.T, docs []bson.M, args bson.D) []bson.M {
	groupField := args[0].Value.(string)[1:]
	groups := map[any]bson.M{}
	counts := map[any]int{}
	var order []any

	for _, doc := range docs {
		key := doc[groupField]
		g, ok := groups[key]
		if !ok {
			g = bson.M{"_id": key}
			groups[key] = g
			order = append(order, key)
		}
		counts[key]++
		for _, acc := range args[1:] {
			op := acc.Value.(bson.D)[0]
			val := doc[op.Value.(string)[1:]]
			switch op.Key {
			case OpSum, OpAvg:
				sum, _ := g[acc.Key].(float64)
				g[acc.Key] = sum + val.(float64)
			case OpFirst:
				if _, seen := g[acc.Key]; !seen {
					g[acc.Key] = val
				}
			default:
				t.Fatalf("unsupported accumulator %s", op.Key)
			}
		}
	}

	out := make([]bson.M, 0, len(order))
	for _, key := range order {
		g := groups[key]
		for _, acc := range args[1:] {
			if acc.Value.(bson.D)[0].Key == OpAvg {
				g[acc.Key] = g[acc.Key].(float64) / float64(counts[key])
			}
		}
		out = append(out, g)
	}
	return out
}

func evalProject(docs []bson.M, args bson.D) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		row := bson.M{}
		for _, field := range args {
			switch v := field.Value.(type) {
			case string:
				row[field.Key] = doc[v[1:]]
			case int:
				if v == 1 {
					row[field.Key] = doc[field.Key]
				}
			}
		}
		out = append(out, row)
	}
	return out
}

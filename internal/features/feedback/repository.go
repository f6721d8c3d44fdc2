package feedback

import (
	"context"
	"fmt"

	"go-apre/internal/aggregation"
	"go-apre/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackRepository interface {
	ChannelRatingByYear(ctx context.Context, year int) ([]ChannelRating, error)
	ChannelRatingByMonth(ctx context.Context, month int) ([]ChannelRating, error)
}

type FeedbackRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewFeedbackRepository(db *database.MongodbDB) FeedbackRepository {
	return &FeedbackRepositoryImpl{
		Collection: db.DB.Collection(database.FeedbackCollection),
	}
}

// channelRating averages ratings per channel for feedback whose date falls in
// the given year or month.
func channelRating(part string, value int) aggregation.GroupReport {
	return aggregation.GroupReport{
		Match:   aggregation.MatchDatePart(part, "date", value),
		GroupBy: "channel",
		Accumulators: []aggregation.Accumulator{
			{As: "ratingAvg", Op: aggregation.OpAvg, Source: "rating"},
		},
	}
}

func (r *FeedbackRepositoryImpl) ChannelRatingByYear(ctx context.Context, year int) ([]ChannelRating, error) {
	rows, err := r.aggregate(ctx, channelRating(aggregation.Year, year).Pipeline())
	if err != nil {
		return nil, fmt.Errorf("channel rating by year %d: %w", year, err)
	}
	return rows, nil
}

func (r *FeedbackRepositoryImpl) ChannelRatingByMonth(ctx context.Context, month int) ([]ChannelRating, error) {
	rows, err := r.aggregate(ctx, channelRating(aggregation.Month, month).Pipeline())
	if err != nil {
		return nil, fmt.Errorf("channel rating by month %d: %w", month, err)
	}
	return rows, nil
}

func (r *FeedbackRepositoryImpl) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]ChannelRating, error) {
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []ChannelRating{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ChannelRating{}
	}
	return rows, nil
}

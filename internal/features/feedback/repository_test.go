package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFeedbackRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes aggregation rows", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "apre.feedback", mtest.FirstBatch,
			bson.D{{Key: "channel", Value: "Email"}, {Key: "ratingAvg", Value: 4.5}},
			bson.D{{Key: "channel", Value: "Phone"}, {Key: "ratingAvg", Value: 3.8}},
		))
		repo := &FeedbackRepositoryImpl{Collection: mt.Coll}

		rows, err := repo.ChannelRatingByYear(context.Background(), 2023)
		require.NoError(mt, err)
		assert.Equal(mt, []ChannelRating{
			{Channel: "Email", RatingAvg: 4.5},
			{Channel: "Phone", RatingAvg: 3.8},
		}, rows)
	})

	mt.Run("no matches is an empty array", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "apre.feedback", mtest.FirstBatch))
		repo := &FeedbackRepositoryImpl{Collection: mt.Coll}

		rows, err := repo.ChannelRatingByMonth(context.Background(), 2)
		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})

	mt.Run("store errors are wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "unknown operator",
		}))
		repo := &FeedbackRepositoryImpl{Collection: mt.Coll}

		_, err := repo.ChannelRatingByMonth(context.Background(), 2)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "channel rating by month 2")
		assert.Contains(mt, err.Error(), "unknown operator")
	})
}

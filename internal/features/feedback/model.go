package feedback

// ChannelRating is one row of the channel rating reports.
type ChannelRating struct {
	Channel   string  `json:"channel" bson:"channel"`
	RatingAvg float64 `json:"ratingAvg" bson:"ratingAvg"`
}

// Report names used for metrics and logging.
const (
	ReportChannelRatingByYear  = "channel_rating_by_year"
	ReportChannelRatingByMonth = "channel_rating_by_month"
)

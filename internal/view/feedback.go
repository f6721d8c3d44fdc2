package view

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"go-apre/internal/catalog"
	"go-apre/internal/features/feedback"

	"go.uber.org/zap"
)

// ChannelRatingByYearView charts the average rating per channel for a year.
// Rows are projected as they arrive; a rating that does not coerce to a
// number is kept as NaN.
type ChannelRatingByYearView struct {
	view[ChartProjection]
	catalog *catalog.Catalog
}

func NewChannelRatingByYearView(baseURL string, fetcher Fetcher, cat *catalog.Catalog, log *zap.Logger) *ChannelRatingByYearView {
	if cat == nil {
		cat = catalog.Default()
	}
	v := &ChannelRatingByYearView{catalog: cat}
	v.init(baseURL, fetcher, log, "channel-rating-by-year", messages{
		failed: "Failed to load data. Please try again.",
	})
	return v
}

// Submit loads the report for year. A nil year issues no request.
func (v *ChannelRatingByYearView) Submit(ctx context.Context, year *int) {
	if year == nil {
		v.reject("Please select a year")
		return
	}

	path := "/reports/customer-feedback/channel-rating-by-year/" + strconv.Itoa(*year)
	noData := fmt.Sprintf("No data found for %s", v.catalog.YearName(*year))
	v.submit(ctx, path, noData, func(rows []any) (ChartProjection, bool) {
		chart := ChartProjection{
			Labels: make([]string, 0, len(rows)),
			Values: make([]float64, 0, len(rows)),
		}
		for _, row := range rows {
			chart.Labels = append(chart.Labels, toText(field(row, "channel")))
			chart.Values = append(chart.Values, toNumber(field(row, "ratingAvg")))
		}
		return chart, true
	})
}

// ChannelRatingByMonthView lists the average rating per channel for a month.
// Rows without a channel name or a numeric rating are left out.
type ChannelRatingByMonthView struct {
	view[[]feedback.ChannelRating]
}

func NewChannelRatingByMonthView(baseURL string, fetcher Fetcher, log *zap.Logger) *ChannelRatingByMonthView {
	v := &ChannelRatingByMonthView{}
	v.init(baseURL, fetcher, log, "channel-rating-by-month", messages{
		loading: "Loading...",
		failed:  "Error fetching data from the server.",
	})
	return v
}

// Submit loads the report for the month selected in the form.
func (v *ChannelRatingByMonthView) Submit(ctx context.Context, month string) {
	month = strings.TrimSpace(month)
	if month == "" {
		v.reject("Please select a month before fetching data.")
		return
	}

	path := "/reports/customer-feedback/channel-rating-by-month/" + url.PathEscape(month)
	v.submit(ctx, path, "No data found for this month", func(rows []any) ([]feedback.ChannelRating, bool) {
		out := make([]feedback.ChannelRating, 0, len(rows))
		for _, row := range rows {
			channel, ok := field(row, "channel").(string)
			if !ok {
				continue
			}
			rating := toNumber(field(row, "ratingAvg"))
			if math.IsNaN(rating) {
				continue
			}
			out = append(out, feedback.ChannelRating{Channel: channel, RatingAvg: rating})
		}
		return out, len(out) > 0
	})
}

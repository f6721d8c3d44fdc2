package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"go-apre/internal/common/api"
	"go-apre/internal/config"
	"go-apre/internal/metrics"
	"go-apre/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeedbackRepo struct {
	byYear  map[int][]ChannelRating
	byMonth map[int][]ChannelRating
	err     error
	calls   int
}

func (f *fakeFeedbackRepo) ChannelRatingByYear(ctx context.Context, year int) ([]ChannelRating, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if rows, ok := f.byYear[year]; ok {
		return rows, nil
	}
	return []ChannelRating{}, nil
}

func (f *fakeFeedbackRepo) ChannelRatingByMonth(ctx context.Context, month int) ([]ChannelRating, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if rows, ok := f.byMonth[month]; ok {
		return rows, nil
	}
	return []ChannelRating{}, nil
}

func newTestApp(repo FeedbackRepository) (*fiber.App, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	log := zap.NewNop()
	app := server.NewFiberServer(&config.Config{AppId: "apre-test"}, log, m)
	svc := NewFeedbackService(repo, m, log)
	server.RegisterAllRoutes(app, []api.Route{NewFeedbackApi(NewFeedbackController(svc))}, log)
	return app, m
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestChannelRatingByYear(t *testing.T) {
	repo := &fakeFeedbackRepo{byYear: map[int][]ChannelRating{
		2023: {{Channel: "Email", RatingAvg: 4.5}, {Channel: "Phone", RatingAvg: 3.8}},
	}}
	app, m := newTestApp(repo)

	status, body := get(t, app, "/api/reports/customer-feedback/channel-rating-by-year/2023")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[{"channel":"Email","ratingAvg":4.5},{"channel":"Phone","ratingAvg":3.8}]`, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-year/1")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[]`, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-year/-1")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[]`, body)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportQueriesTotal.WithLabelValues(ReportChannelRatingByYear, metrics.ResultRows)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReportQueriesTotal.WithLabelValues(ReportChannelRatingByYear, metrics.ResultEmpty)))
}

func TestChannelRatingByYearRejectsNonIntegers(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	app, _ := newTestApp(repo)

	for _, year := range []string{"pie", "20.5", "2023abc"} {
		status, body := get(t, app, "/api/reports/customer-feedback/channel-rating-by-year/"+year)
		assert.Equal(t, 400, status, year)
		assert.JSONEq(t, `{"message":"year must be an integer","status":400,"type":"error"}`, body, year)
	}
	assert.Zero(t, repo.calls)
}

func TestChannelRatingByMonthPathAndQuery(t *testing.T) {
	repo := &fakeFeedbackRepo{byMonth: map[int][]ChannelRating{
		2: {{Channel: "Email", RatingAvg: 4.5}, {Channel: "Phone", RatingAvg: 3.8}},
	}}
	app, _ := newTestApp(repo)
	want := `[{"channel":"Email","ratingAvg":4.5},{"channel":"Phone","ratingAvg":3.8}]`

	status, body := get(t, app, "/api/reports/customer-feedback/channel-rating-by-month/2")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, want, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-month?month=2")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, want, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-month/7")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[]`, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-month?month=-1")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `[]`, body)
}

func TestChannelRatingByMonthValidation(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	app, _ := newTestApp(repo)

	status, body := get(t, app, "/api/reports/customer-feedback/channel-rating-by-month")
	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"message":"month is required","status":400,"type":"error"}`, body)

	status, body = get(t, app, "/api/reports/customer-feedback/channel-rating-by-month/abc")
	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"message":"month must be an integer","status":400,"type":"error"}`, body)

	status, _ = get(t, app, "/api/reports/customer-feedback/channel-rating-by-month?month=june")
	assert.Equal(t, 400, status)

	assert.Zero(t, repo.calls)
}

func TestStoreErrorsBecome500(t *testing.T) {
	repo := &fakeFeedbackRepo{err: errors.New("server selection timeout")}
	app, m := newTestApp(repo)

	status, body := get(t, app, "/api/reports/customer-feedback/channel-rating-by-year/2023")
	assert.Equal(t, 500, status)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "error", got["type"])
	assert.EqualValues(t, 500, got["status"])
	assert.NotContains(t, body, "server selection timeout")
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportQueriesTotal.WithLabelValues(ReportChannelRatingByYear, metrics.ResultError)))
}

func TestUnknownFeedbackRoute(t *testing.T) {
	app, _ := newTestApp(&fakeFeedbackRepo{})

	for _, target := range []string{
		"/api/reports/customer-feedback/invalid-endpoint",
		"/api/reports/customer-feedback/invalid-endpoint?year=2023",
	} {
		status, body := get(t, app, target)
		assert.Equal(t, 404, status)
		assert.JSONEq(t, `{"message":"Not Found","status":404,"type":"error"}`, body)
	}
}

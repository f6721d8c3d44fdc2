package feedback

import (
	"context"

	"go-apre/internal/metrics"

	"go.uber.org/zap"
)

type FeedbackService interface {
	ChannelRatingByYear(ctx context.Context, year int) ([]ChannelRating, error)
	ChannelRatingByMonth(ctx context.Context, month int) ([]ChannelRating, error)
}

type FeedbackServiceImpl struct {
	FeedbackRepo FeedbackRepository
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo FeedbackRepository, m *metrics.Metrics, log *zap.Logger) FeedbackService {
	return &FeedbackServiceImpl{
		FeedbackRepo: feedbackRepo,
		Metrics:      m,
		Logger:       log.Named("feedback"),
	}
}

func (s *FeedbackServiceImpl) ChannelRatingByYear(ctx context.Context, year int) ([]ChannelRating, error) {
	rows, err := s.FeedbackRepo.ChannelRatingByYear(ctx, year)
	s.observe(ReportChannelRatingByYear, zap.Int("year", year), rows, err)
	return rows, err
}

func (s *FeedbackServiceImpl) ChannelRatingByMonth(ctx context.Context, month int) ([]ChannelRating, error) {
	rows, err := s.FeedbackRepo.ChannelRatingByMonth(ctx, month)
	s.observe(ReportChannelRatingByMonth, zap.Int("month", month), rows, err)
	return rows, err
}

func (s *FeedbackServiceImpl) observe(report string, dimension zap.Field, rows []ChannelRating, err error) {
	s.Metrics.ObserveReport(report, len(rows), err)
	if err != nil {
		s.Logger.Error("report query failed", zap.String("report", report), dimension, zap.Error(err))
		return
	}
	s.Logger.Debug("report query", zap.String("report", report), dimension, zap.Int("rows", len(rows)))
}

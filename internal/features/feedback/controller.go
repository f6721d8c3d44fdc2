package feedback

import (
	"go-apre/internal/common/params"

	"github.com/gofiber/fiber/v2"
)

type FeedbackController struct {
	FeedbackService FeedbackService
}

func NewFeedbackController(feedbackService FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// ChannelRatingByYear godoc
// @Summary Average rating by channel for a year
// @Description Averages customer feedback ratings per channel for feedback dated in the given year. An empty array means no feedback matched.
// @Tags customer-feedback
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} ChannelRating
// @Failure 400 {object} apierror.Error
// @Failure 500 {object} apierror.Error
// @Router /api/reports/customer-feedback/channel-rating-by-year/{year} [get]
func (c *FeedbackController) ChannelRatingByYear(ctx *fiber.Ctx) error {
	year, err := params.Integer("year", ctx.Params("year"))
	if err != nil {
		return err
	}

	rows, err := c.FeedbackService.ChannelRatingByYear(ctx.UserContext(), year)
	if err != nil {
		return err
	}
	return ctx.JSON(rows)
}

// ChannelRatingByMonth godoc
// @Summary Average rating by channel for a month
// @Description Averages customer feedback ratings per channel for feedback dated in the given month of any year. The month may be given as a path segment or as the month query parameter.
// @Tags customer-feedback
// @Produce json
// @Param month path int false "Month (1-12)"
// @Param month query int false "Month (1-12), used when the path segment is absent"
// @Success 200 {array} ChannelRating
// @Failure 400 {object} apierror.Error
// @Failure 500 {object} apierror.Error
// @Router /api/reports/customer-feedback/channel-rating-by-month/{month} [get]
func (c *FeedbackController) ChannelRatingByMonth(ctx *fiber.Ctx) error {
	raw := ctx.Params("month")
	if raw == "" {
		raw = ctx.Query("month")
	}

	month, err := params.Integer("month", raw)
	if err != nil {
		return err
	}

	rows, err := c.FeedbackService.ChannelRatingByMonth(ctx.UserContext(), month)
	if err != nil {
		return err
	}
	return ctx.JSON(rows)
}

package feedback

import (
	"github.com/gofiber/fiber/v2"
)

type FeedbackApi struct {
	FeedbackController *FeedbackController
}

func NewFeedbackApi(feedbackController *FeedbackController) *FeedbackApi {
	return &FeedbackApi{FeedbackController: feedbackController}
}

func (api *FeedbackApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports/customer-feedback")

	group.Get("/channel-rating-by-year/:year", api.FeedbackController.ChannelRatingByYear)
	group.Get("/channel-rating-by-month", api.FeedbackController.ChannelRatingByMonth)
	group.Get("/channel-rating-by-month/:month", api.FeedbackController.ChannelRatingByMonth)
}

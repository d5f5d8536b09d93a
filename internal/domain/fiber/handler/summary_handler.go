package handler

import (
	"time"

	"github.com/careerforge/cover-letter-api/internal/middleware"
	"github.com/careerforge/cover-letter-api/internal/usecase"
	"github.com/careerforge/cover-letter-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SummaryHandler struct {
	uc *usecase.SummaryUsecase
}

func NewSummaryHandler(uc *usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

func (h *SummaryHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/summarize", middleware.RateLimiter(2, 5*time.Second), h.Summarize)
}

type summarizeRequest struct {
	URL string `json:"url"`
}

func (h *SummaryHandler) Summarize(c *fiber.Ctx) error {
	var req summarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.URL == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "url is required",
		})
	}

	summary, err := h.uc.Summarize(c.Context(), req.URL)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "cannot summarize website",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success summarize website",
		Data:    fiber.Map{"summary": summary},
	})
}

package handler

import (
	"path/filepath"
	"time"

	"github.com/careerforge/cover-letter-api/internal/middleware"
	"github.com/careerforge/cover-letter-api/internal/usecase"
	"github.com/careerforge/cover-letter-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MinutesHandler struct {
	uc *usecase.MinutesUsecase
}

func NewMinutesHandler(uc *usecase.MinutesUsecase) *MinutesHandler {
	return &MinutesHandler{uc: uc}
}

func (h *MinutesHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/minutes", middleware.RateLimiter(1, 10*time.Second), h.Generate)
}

func (h *MinutesHandler) Generate(c *fiber.Ctx) error {
	audioPath := ""
	if file, err := c.FormFile("audio"); err == nil && file != nil {
		savePath := filepath.Join("./uploads/audio/", file.Filename)
		if err := c.SaveFile(file, savePath); err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot save audio file",
			}, err)
		}
		audioPath = savePath
	}

	meetingTitle := c.FormValue("meeting_title")
	participants := c.FormValue("participants")

	content, status := h.uc.Generate(c.Context(), audioPath, meetingTitle, participants)
	if status != usecase.StatusCompleted {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: content,
		})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate meeting minutes",
		Data:    fiber.Map{"content": content, "status": status},
	})
}

package handler

import (
	"path/filepath"
	"time"

	"github.com/careerforge/cover-letter-api/internal/dto"
	"github.com/careerforge/cover-letter-api/internal/middleware"
	"github.com/careerforge/cover-letter-api/internal/usecase"
	"github.com/careerforge/cover-letter-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type LetterHandler struct {
	uc *usecase.CoverLetterUsecase
}

func NewLetterHandler(uc *usecase.CoverLetterUsecase) *LetterHandler {
	return &LetterHandler{uc: uc}
}

func (h *LetterHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/cover-letter", middleware.RateLimiter(1, 4*time.Second), h.Generate)
	app.Get("/cover-letter/:id", h.Result)
	app.Get("/jobs", h.AnalyzedJobs)
}

// Generate accepts a multipart resume upload plus the job description and
// runs one synchronous generation. The usecase owns all validation; an
// absent file simply reaches it as an empty path.
func (h *LetterHandler) Generate(c *fiber.Ctx) error {
	resumePath := ""
	if file, err := c.FormFile("resume"); err == nil && file != nil {
		savePath := filepath.Join("./uploads/resume/", file.Filename)
		if err := c.SaveFile(file, savePath); err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot save resume file",
			}, err)
		}
		resumePath = savePath
	}

	jobDescription := c.FormValue("job_description")
	fileType := c.FormValue("file_type", "auto")

	content, status := h.uc.Generate(c.Context(), resumePath, jobDescription, fileType)
	if status != usecase.StatusCompleted {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: content,
		})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate cover letter",
		Data:    fiber.Map{"content": content, "status": status},
	})
}

func (h *LetterHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.uc.GetResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "letter task not found",
		}, err)
	}
	data := dto.LetterTaskDTO{
		ID:           task.ID,
		Status:       task.Status,
		FileType:     task.FileType,
		ResumeRecord: task.ResumeRecord,
		JobRecord:    task.JobRecord,
		CoverLetter:  task.CoverLetter,
		ErrorMessage: task.ErrorMessage,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get letter task",
		Data:    data,
	})
}

func (h *LetterHandler) AnalyzedJobs(c *fiber.Ctx) error {
	jobs, err := h.uc.ListAnalyzedJobs()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot list analyzed jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get analyzed jobs",
		Data:    jobs,
	})
}

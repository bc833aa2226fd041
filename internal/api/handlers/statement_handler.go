package handlers

import (
	"errors"
	"io"

	"mpesa-wrap/internal/dto"
	"mpesa-wrap/internal/service"
	"mpesa-wrap/pkg/logger"
	"mpesa-wrap/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatementHandler struct {
	statementService *service.StatementService
	logger           *zap.Logger
}

func NewStatementHandler(statementService *service.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		logger:           logger,
	}
}

// ProcessStatement godoc
// @Summary Analyze an M-Pesa statement
// @Description Parse an uploaded M-Pesa PDF statement in memory and return its ledger and spending analytics
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "M-Pesa statement (PDF)"
// @Param password formData string false "Statement password"
// @Success 200 {object} dto.StatementAnalysis
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/statements/analyze [post]
func (h *StatementHandler) ProcessStatement(c *fiber.Ctx) error {
	log := logger.WithRequestID(h.logger, middleware.GetRequestID(c))

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Failed to read file",
		})
	}

	result, err := h.statementService.AnalyzeStatement(c.UserContext(), data, c.FormValue("password"))
	if err != nil {
		status := statusFor(err)
		log.Warn("Statement analysis failed",
			zap.String("file", file.Filename),
			zap.Int("status", status),
			zap.Error(err),
		)
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(result)
}

func statusFor(err error) int {
	var stmtErr *service.StatementError
	if !errors.As(err, &stmtErr) {
		return fiber.StatusInternalServerError
	}
	switch stmtErr.Kind {
	case service.KindAuthentication:
		return fiber.StatusUnauthorized
	case service.KindMalformed:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

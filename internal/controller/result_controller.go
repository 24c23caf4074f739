package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/service"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// SubmitResult godoc
// @Summary Submit an attempt result
// @Description Stores a completed attempt. The attempt id is generated server-side.
// @Tags Results
// @Accept json
// @Produce json
// @Param result body dto.ResultSubmitDTO true "Attempt result"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results [post]
func (c *ResultController) SubmitResult(ctx *gin.Context) {
	var req dto.ResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	result, err := c.resultService.SubmitResult(req)
	if err != nil {
		log.Error().Err(err).Str("testID", req.TestID).Msg("SubmitResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save result"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.ResultResponse{Success: true, Result: *result, Message: "Result saved successfully"})
}

// ListResultsByTest godoc
// @Summary List results for a test
// @Description Returns the test's results, most recent first, with derived stats.
// @Tags Results
// @Produce json
// @Param testId path string true "External test id"
// @Success 200 {object} dto.TestResultsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/test/{testId} [get]
func (c *ResultController) ListResultsByTest(ctx *gin.Context) {
	results, stats, err := c.resultService.ListResultsByTest(ctx.Param("testId"))
	if err != nil {
		log.Error().Err(err).Str("testID", ctx.Param("testId")).Msg("ListResultsByTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TestResultsResponse{Success: true, Results: results, Stats: stats})
}

// GetResult godoc
// @Summary Get a result by attempt id
// @Tags Results
// @Produce json
// @Param attemptId path string true "Attempt id"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/{attemptId} [get]
func (c *ResultController) GetResult(ctx *gin.Context) {
	result, err := c.resultService.GetResult(ctx.Param("attemptId"))
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Result not found"})
			return
		}
		log.Error().Err(err).Str("attemptID", ctx.Param("attemptId")).Msg("GetResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve result"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Success: true, Result: *result})
}

// History godoc
// @Summary Attempt history across all tests
// @Description Per-test summary map keyed by test id; tests without attempts are absent.
// @Tags Results
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/history [get]
func (c *ResultController) History(ctx *gin.Context) {
	history, err := c.resultService.History()
	if err != nil {
		log.Error().Err(err).Msg("History: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HistoryResponse{Success: true, History: history})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

// ListTests godoc
// @Summary List all tests
// @Description Returns every test, most recently created first.
// @Tags Tests
// @Produce json
// @Success 200 {object} dto.TestListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	tests, err := c.testService.ListTests()
	if err != nil {
		log.Error().Err(err).Msg("ListTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TestListResponse{Success: true, Tests: tests})
}

// GetTest godoc
// @Summary Get a test by id
// @Tags Tests
// @Produce json
// @Param id path string true "External test id"
// @Success 200 {object} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	test, err := c.testService.GetTest(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", ctx.Param("id")).Msg("GetTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TestResponse{Success: true, Test: *test})
}

// CreateTest godoc
// @Summary Create a test
// @Description Stores a full test definition. The external id must be unique.
// @Tags Tests
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test definition"
// @Success 201 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Duplicate test id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	test, err := c.testService.CreateTest(req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateTestID) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Test with this id already exists"})
			return
		}
		log.Error().Err(err).Str("testID", req.TestID).Msg("CreateTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create test"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.TestResponse{Success: true, Test: *test, Message: "Test created successfully"})
}

// UpdateTest godoc
// @Summary Update a test
// @Description Replaces the fields of an existing test.
// @Tags Tests
// @Accept json
// @Produce json
// @Param id path string true "External test id"
// @Param test body dto.TestUpdateDTO true "Replacement fields"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	test, err := c.testService.UpdateTest(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", ctx.Param("id")).Msg("UpdateTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TestResponse{Success: true, Test: *test, Message: "Test updated successfully"})
}

// DeleteTest godoc
// @Summary Delete a test
// @Description Removes the test and cascades to every result referencing it.
// @Tags Tests
// @Produce json
// @Param id path string true "External test id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	if err := c.testService.DeleteTest(ctx.Param("id")); err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", ctx.Param("id")).Msg("DeleteTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Test deleted successfully"})
}

// InitData godoc
// @Summary Seed the test collection
// @Description Inserts the supplied tests only if the collection is empty.
// @Tags Tests
// @Accept json
// @Produce json
// @Param tests body []dto.TestCreateDTO true "Seed tests"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /init-data [post]
func (c *TestController) InitData(ctx *gin.Context) {
	var reqs []dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	message, err := c.testService.SeedTests(reqs)
	if err != nil {
		log.Error().Err(err).Msg("InitData: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to initialize database"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

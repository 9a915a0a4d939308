// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debt-manager/backend/internal/application/usecase/debt"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/entrypoint/dto"
	"github.com/debt-manager/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt management endpoints.
type DebtController struct {
	createUseCase *debt.CreateDebtUseCase
	getUseCase    *debt.GetDebtUseCase
	listUseCase   *debt.ListDebtsUseCase
	updateUseCase *debt.UpdateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	createUseCase *debt.CreateDebtUseCase,
	getUseCase *debt.GetDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeDebtMissingFields),
		})
		return
	}

	userID := ctx.GetString(string(middleware.UserIDKey))

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:       userID,
		Description:  req.Description,
		Amount:       req.Amount,
		DebtorName:   req.DebtorName,
		CreditorName: req.CreditorName,
		DueDate:      req.DueDate,
		Notes:        req.Notes,
		Status:       entity.StatusName(req.Status),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt, output.Status))
}

// List handles GET /debts requests with pagination.
func (c *DebtController) List(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	records := make([]dto.DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		records[i] = dto.ToDebtResponse(d.Debt, d.Status)
	}

	ctx.JSON(http.StatusOK, dto.DebtListResponse{
		Records: records,
		Pagination: dto.PaginationResponse{
			Page:         output.PageInfo.Page,
			PageSize:     output.PageInfo.PageSize,
			TotalPages:   output.PageInfo.TotalPages,
			TotalRecords: output.PageInfo.TotalRecords,
		},
	})
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), debt.GetDebtInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt, output.Status))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeDebtMissingFields),
		})
		return
	}

	input := debt.UpdateDebtInput{
		ID:           ctx.Param("id"),
		Description:  req.Description,
		Amount:       req.Amount,
		DebtorName:   req.DebtorName,
		CreditorName: req.CreditorName,
		DueDate:      req.DueDate,
		ClosingDate:  req.ClosingDate,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		status := entity.StatusName(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt, output.Status))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Debt deleted successfully",
	})
}

// handleDebtError maps debt use case errors to HTTP responses. Database
// faults are logged with their cause and answered with a generic message.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrDebtNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Debt not found",
			Code:  string(domainerror.ErrCodeDebtNotFound),
		})
		return
	}

	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Message,
		})
		return
	}

	slog.Error("Debt operation failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDebtInternal),
	})
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/debt-manager/backend/internal/application/usecase/user"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/entrypoint/dto"
)

// UserController handles user management endpoints.
type UserController struct {
	getUseCase    *user.GetUserUseCase
	listUseCase   *user.ListUsersUseCase
	updateUseCase *user.UpdateUserUseCase
	deleteUseCase *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /users requests with pagination.
func (c *UserController) List(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	records := make([]dto.UserResponse, len(output.Result.Users))
	for i, u := range output.Result.Users {
		records[i] = dto.ToUserResponse(u)
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{
		Records: records,
		Pagination: dto.PaginationResponse{
			Page:         output.Result.PageInfo.Page,
			PageSize:     output.Result.PageInfo.PageSize,
			TotalPages:   output.Result.PageInfo.TotalPages,
			TotalRecords: output.Result.PageInfo.TotalRecords,
		},
	})
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		ID:       ctx.Param("id"),
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "User deleted successfully",
	})
}

// handleUserError maps user use case errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
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

	slog.Error("User operation failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeAuthInternal),
	})
}

// parsePagination reads the page and page_size query parameters, falling
// back to page 1 and 10 records per page.
func parsePagination(ctx *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 10

	if raw := ctx.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page = v
		}
	}
	if raw := ctx.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			pageSize = v
		}
	}
	return page, pageSize
}

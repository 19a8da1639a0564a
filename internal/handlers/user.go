// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.users.ListUsers(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, *result)
}

// GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// POST /v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req services.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, user)
}

// PUT /v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// DELETE /v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers the public sign-up route and the verified role lookup.
func registerUserRoutes(public gin.IRoutes, verified gin.IRoutes, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	public.POST("/users", h.createUser)
	verified.GET("/user-role/:email/role", h.getUserRole)
}

// createUser godoc
// @Summary Register a user
// @Description Stores a new HR manager or employee. Role defaults to employee.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} dto.ErrorResponse "Invalid input or user already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// getUserRole godoc
// @Summary Get a user's role
// @Description Returns the stored role; empty for unknown users.
// @Tags users
// @Produce  json
// @Param   email path string true "User email"
// @Success 200 {object} dto.UserRoleResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /user-role/{email}/role [get]
func (h *userHandler) getUserRole(c *gin.Context) {
	role, err := h.userService.GetUserRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserRoleResponse{Role: role})
}

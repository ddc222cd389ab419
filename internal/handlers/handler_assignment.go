package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// assignmentHandler exposes assets handed out to employees.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
	authService       portssvc.AuthSvcFacade
	limits            listLimiter
}

func registerAssignmentRoutes(verified gin.IRoutes, assignmentService portssvc.AssignmentSvcFacade, authService portssvc.AuthSvcFacade, limits listLimiter) {
	h := &assignmentHandler{assignmentService: assignmentService, authService: authService, limits: limits}
	verified.GET("/assigned-asset/:employeeEmail", h.assignedAssets)
	verified.PATCH("/return-asset/:id", h.returnAsset)
}

// assignedAssets godoc
// @Summary List an employee's assignments
// @Description Served to the employee themself or to an HR manager.
// @Tags assignments
// @Produce  json
// @Param   employeeEmail path string true "Employee email"
// @Param   limit query int false "Maximum number of assignments"
// @Success 200 {array} domain.AssignedAsset
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /assigned-asset/{employeeEmail} [get]
func (h *assignmentHandler) assignedAssets(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	employeeEmail := c.Param("employeeEmail")
	if !strings.EqualFold(caller, employeeEmail) {
		if err := h.authService.AuthorizeRole(c.Request.Context(), caller, domain.RoleHR); err != nil {
			respondError(c, err)
			return
		}
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	assignments, err := h.assignmentService.ListAssignments(c.Request.Context(), employeeEmail, h.limits.options(params))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// returnAsset godoc
// @Summary Return an assigned asset
// @Description Closes the assignment and puts one unit back in stock. Only the assignee or the assigning HR may call it.
// @Tags assignments
// @Produce  json
// @Param   id path string true "Assignment ID"
// @Success 200 {object} domain.AssignedAsset
// @Failure 400 {object} dto.ErrorResponse "Invalid id or non-returnable asset"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Already returned"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /return-asset/{id} [patch]
func (h *assignmentHandler) returnAsset(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	assignment, err := h.assignmentService.ReturnAsset(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

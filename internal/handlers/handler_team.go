package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// teamHandler exposes employer/employee affiliations.
type teamHandler struct {
	affiliationService portssvc.AffiliationSvcFacade
	limits             listLimiter
}

func registerTeamRoutes(hr gin.IRoutes, affiliationService portssvc.AffiliationSvcFacade, limits listLimiter) {
	h := &teamHandler{affiliationService: affiliationService, limits: limits}
	hr.GET("/my-team", h.myTeam)
	hr.GET("/employee/:hrEmail", h.employees)
	hr.DELETE("/remove-employee/:id", h.removeEmployee)
}

// myTeam godoc
// @Summary List all affiliations
// @Description Every employer/employee link, newest first.
// @Tags team
// @Produce  json
// @Param   limit query int false "Maximum number of affiliations"
// @Success 200 {array} domain.Affiliation
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /my-team [get]
func (h *teamHandler) myTeam(c *gin.Context) {
	h.respondTeam(c, "")
}

// employees godoc
// @Summary List an employer's team
// @Description Affiliations of the calling HR, newest first.
// @Tags team
// @Produce  json
// @Param   hrEmail path string true "HR email (must be the caller)"
// @Param   limit query int false "Maximum number of affiliations"
// @Success 200 {array} domain.Affiliation
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /employee/{hrEmail} [get]
func (h *teamHandler) employees(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	hrEmail := c.Param("hrEmail")
	if !requireSelf(c, caller, hrEmail) {
		return
	}
	h.respondTeam(c, hrEmail)
}

func (h *teamHandler) respondTeam(c *gin.Context, hrEmail string) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	team, err := h.affiliationService.ListAffiliations(c.Request.Context(), hrEmail, h.limits.options(params))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// removeEmployee godoc
// @Summary Remove an employee from a team
// @Description Deletes one of the caller's affiliations by id.
// @Tags team
// @Produce  json
// @Param   id path string true "Affiliation ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /remove-employee/{id} [delete]
func (h *teamHandler) removeEmployee(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	deleted, err := h.affiliationService.RemoveEmployee(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}

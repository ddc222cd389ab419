package handlers

import (
	"net/http"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// requestHandler handles asset requests and their approval.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
	limits         listLimiter
}

func registerRequestRoutes(verified gin.IRoutes, hr gin.IRoutes, requestService portssvc.RequestSvcFacade, limits listLimiter) {
	h := &requestHandler{requestService: requestService, limits: limits}
	verified.POST("/add-request", h.addRequest)
	verified.GET("/my-requests", h.myRequests)
	hr.GET("/all-request/:email", h.employerRequests)
	hr.GET("/all-requests", h.allRequests)
	hr.PATCH("/update-request/:id", h.updateRequest)
}

// addRequest godoc
// @Summary Request an asset
// @Description Stores a pending request. requesterEmail defaults to the caller.
// @Tags requests
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateRequestRequest true "Request details"
// @Success 201 {object} domain.Request
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /add-request [post]
func (h *requestHandler) addRequest(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	request, err := h.requestService.SubmitRequest(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// myRequests godoc
// @Summary List my requests
// @Description The caller's own requests, newest first.
// @Tags requests
// @Produce  json
// @Param   status query string false "pending, approved or rejected"
// @Param   limit query int false "Maximum number of requests"
// @Success 200 {array} domain.Request
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /my-requests [get]
func (h *requestHandler) myRequests(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	h.respondRequests(c, domain.RequestFilter{RequesterEmail: caller})
}

// employerRequests godoc
// @Summary List an employer's requests
// @Description Requests addressed to the calling HR, newest first.
// @Tags requests
// @Produce  json
// @Param   email path string true "HR email (must be the caller)"
// @Param   status query string false "pending, approved or rejected"
// @Param   limit query int false "Maximum number of requests"
// @Success 200 {array} domain.Request
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /all-request/{email} [get]
func (h *requestHandler) employerRequests(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	email := c.Param("email")
	if !requireSelf(c, caller, email) {
		return
	}
	h.respondRequests(c, domain.RequestFilter{HREmail: email})
}

// allRequests godoc
// @Summary List every request
// @Description Unfiltered request dump for reporting.
// @Tags requests
// @Produce  json
// @Param   limit query int false "Maximum number of requests"
// @Success 200 {array} domain.Request
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /all-requests [get]
func (h *requestHandler) allRequests(c *gin.Context) {
	h.respondRequests(c, domain.RequestFilter{})
}

func (h *requestHandler) respondRequests(c *gin.Context, filter domain.RequestFilter) {
	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	filter.Status = params.Status

	requests, err := h.requestService.ListRequests(c.Request.Context(), filter, h.limits.options(params.ListParams))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// updateRequest godoc
// @Summary Approve or reject a request
// @Description Approval takes one unit of stock, records the assignment and links the employee to the employer in one transaction.
// @Tags requests
// @Accept  json
// @Produce  json
// @Param   id path string true "Request ID"
// @Param   decision body dto.UpdateRequestStatusRequest true "Decision"
// @Success 200 {object} dto.RequestDecisionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Request or asset not found"
// @Failure 409 {object} dto.ErrorResponse "Already processed or out of stock"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /update-request/{id} [patch]
func (h *requestHandler) updateRequest(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	requestID := c.Param("id")
	decision, err := h.requestService.UpdateRequestStatus(c.Request.Context(), requestID, req, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestDecisionResponse(decision))
}

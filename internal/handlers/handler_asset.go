package handlers

import (
	"net/http"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to the inventory.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
	limits       listLimiter
}

func registerAssetRoutes(verified gin.IRoutes, hr gin.IRoutes, assetService portssvc.AssetSvcFacade, limits listLimiter) {
	h := &assetHandler{assetService: assetService, limits: limits}
	verified.GET("/asset-list", h.listAssets)
	hr.POST("/add-asset", h.addAsset)
	hr.GET("/all-assets", h.allAssets)
}

// addAsset godoc
// @Summary Add an asset
// @Description Adds an inventory line. hrEmail defaults to the caller.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} domain.Asset
// @Failure 400 {object} dto.ErrorResponse "Invalid input or product already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /add-asset [post]
func (h *assetHandler) addAsset(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// listAssets godoc
// @Summary List assets
// @Description Assets newest first, optionally filtered by employer and product name.
// @Tags assets
// @Produce  json
// @Param   hrEmail query string false "Owning HR email"
// @Param   search query string false "Case-insensitive product name fragment"
// @Param   limit query int false "Maximum number of assets"
// @Success 200 {array} domain.Asset
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /asset-list [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	filter := domain.AssetFilter{HREmail: params.HREmail, Search: params.Search}
	h.respondAssets(c, filter, params.ListParams)
}

// allAssets godoc
// @Summary List every asset
// @Description Unfiltered inventory dump for reporting.
// @Tags assets
// @Produce  json
// @Param   limit query int false "Maximum number of assets"
// @Success 200 {array} domain.Asset
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /all-assets [get]
func (h *assetHandler) allAssets(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	h.respondAssets(c, domain.AssetFilter{}, params)
}

func (h *assetHandler) respondAssets(c *gin.Context, filter domain.AssetFilter, params dto.ListParams) {
	assets, err := h.assetService.ListAssets(c.Request.Context(), filter, h.limits.options(params))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

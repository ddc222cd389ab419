package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type packageHandler struct {
	packageService portssvc.PackageSvcFacade
	limits         listLimiter
}

func registerPackageRoutes(public gin.IRoutes, packageService portssvc.PackageSvcFacade, limits listLimiter) {
	h := &packageHandler{packageService: packageService, limits: limits}
	public.GET("/packages", h.listPackages)
}

// listPackages godoc
// @Summary List subscription packages
// @Description Returns the catalog, largest employee limit first.
// @Tags packages
// @Produce  json
// @Param   limit query int false "Maximum number of packages"
// @Success 200 {array} domain.Package
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	packages, err := h.packageService.ListPackages(c.Request.Context(), h.limits.options(params))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

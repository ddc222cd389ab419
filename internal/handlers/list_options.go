package handlers

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/dto"
)

// listLimiter turns ?limit= into ListOptions capped at max. A zero max leaves lists unbounded.
type listLimiter struct {
	max int
}

func (l listLimiter) options(p dto.ListParams) domain.ListOptions {
	limit := p.Limit
	if l.max > 0 && (limit == 0 || limit > l.max) {
		limit = l.max
	}
	return domain.ListOptions{Limit: limit}
}

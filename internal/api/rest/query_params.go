package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/coinfolio/gallery/internal/domain"
)

// BrowseQueryParams holds query parameters for GET /coins
type BrowseQueryParams struct {
	Search    string `form:"search"`
	CountryID int64  `form:"country_id"`
	PeriodID  int64  `form:"period_id"`
	Owned     string `form:"owned,default=all"`
	Sort      string `form:"sort"`
	View      string `form:"view,default=grid"`
}

// MetadataQueryParams holds query parameters for GET /metadata
type MetadataQueryParams struct {
	Owned string `form:"owned,default=all"`
}

// PeriodsQueryParams holds query parameters for GET /periods
type PeriodsQueryParams struct {
	CountryID int64 `form:"country_id" binding:"required"`
}

// ParseBrowseQuery parses and normalizes query parameters for GET /coins
func ParseBrowseQuery(c *gin.Context) (domain.FilterState, domain.ViewMode, error) {
	var params BrowseQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return domain.FilterState{}, "", err
	}

	filter := domain.FilterState{
		Search:    params.Search,
		CountryID: params.CountryID,
		PeriodID:  params.PeriodID,
		Owned:     parseOwned(params.Owned),
		SortBy:    domain.ParseSortKey(params.Sort),
	}
	return filter, domain.ParseViewMode(params.View), nil
}

func parseOwned(s string) domain.OwnedFilter {
	if s == string(domain.OwnedOnly) {
		return domain.OwnedOnly
	}
	return domain.OwnedAll
}

package v1

import (
	"net/http"

	"github.com/bucketly/backend/internal/httputil"
	"github.com/bucketly/backend/internal/identity"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the summary.
// The parameter group is the api endpoint route group for the version
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// OptionsSummary returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the owner's money at a glance
//
//	@Summary		Get summary
//	@Description	Returns total income, the sum of all active bucket balances and the unallocated rest
//	@Tags			Summary
//	@Produce		json
//	@Success		200	{object}	SummaryResponse
//	@Failure		401	{object}	httpError
//	@Failure		503	{object}	SummaryResponse
//	@Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	summary, err := allocator.GetSummary(c.Request.Context(), identity.OwnerID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &SummaryData{
		TotalIncome: summary.TotalIncome,
		Allocated:   summary.Allocated,
		Unallocated: summary.Unallocated,
	}})
}

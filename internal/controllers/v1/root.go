package v1

import (
	"net/http"

	"github.com/bucketly/backend/internal/engine"
	"github.com/bucketly/backend/internal/httputil"
	"github.com/bucketly/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// allocator is the allocation engine the handlers use. All balance
// mutations go through it. Serialization per owner does not depend on
// this being a singleton, all engines share one owner lock table.
var allocator *engine.Engine

// RegisterRoutes registers all routes for the v1 API.
// The parameter group is the api endpoint route group for the version
func RegisterRoutes(r *gin.RouterGroup) {
	allocator = engine.New(models.DB)

	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterBucketRoutes(r.Group("/buckets"))
	RegisterIncomeRoutes(r.Group("/income"))
	RegisterSummaryRoutes(r.Group("/summary"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Buckets string `json:"buckets" example:"https://example.com/api/v1/buckets"` // URL of Bucket collection endpoint
	Income  string `json:"income" example:"https://example.com/api/v1/income"`   // URL of income list endpoint
	Summary string `json:"summary" example:"https://example.com/api/v1/summary"` // URL of summary endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Buckets: url + "/v1/buckets",
			Income:  url + "/v1/income",
			Summary: url + "/v1/summary",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

package v1

import (
	"net/http"

	"github.com/bucketly/backend/internal/httputil"
	"github.com/bucketly/backend/internal/identity"
	"github.com/bucketly/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeRoutes registers the routes for income.
// The parameter group is the api endpoint route group for the version
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncomeList)
	r.GET("", GetIncome)
}

// OptionsIncomeList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Income
//	@Success		204
//	@Router			/v1/income [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetIncome returns the income ledger records for the requesting owner
//
//	@Summary		List income
//	@Description	Returns all income records for the authenticated owner, newest first
//	@Tags			Income
//	@Produce		json
//	@Success		200	{object}	IncomeListResponse
//	@Failure		401	{object}	httpError
//	@Failure		503	{object}	IncomeListResponse
//	@Router			/v1/income [get]
func GetIncome(c *gin.Context) {
	incomes, err := models.IncomeTransactions(models.DB, identity.OwnerID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &s})
		return
	}

	data := make([]IncomeTransaction, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncomeTransaction(income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}

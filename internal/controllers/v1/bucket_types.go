package v1

import (
	"fmt"

	"github.com/bucketly/backend/internal/engine"
	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type BucketEditable struct {
	Name          string      `json:"name" example:"Groceries" default:""`                                         // Name of the bucket
	MonthlyTarget types.Money `json:"monthlyTarget" example:"300.00" minimum:"0.00" multipleOf:"0.01" default:"0"` // Advisory spending target, never enforced
	Color         string      `json:"color" example:"#3b82f6" default:"#3b82f6"`                                   // Display color of the bucket
}

// model returns the engine representation of the editable fields
func (editable BucketEditable) model() engine.BucketCreate {
	return engine.BucketCreate{
		Name:          editable.Name,
		MonthlyTarget: editable.MonthlyTarget,
		Color:         editable.Color,
	}
}

type BucketLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/buckets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                    // The bucket itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/buckets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/allocations"` // The audit log of the bucket
}

type Bucket struct {
	models.DefaultModel
	BucketEditable
	CurrentBalance types.Money `json:"currentBalance" example:"120.00"` // Balance currently allocated to this bucket
	Links          BucketLinks `json:"links"`
}

// newBucket returns the API v1 representation of the resource
func newBucket(c *gin.Context, model models.Bucket) Bucket {
	url := c.GetString(string(models.DBContextURL))

	return Bucket{
		DefaultModel: model.DefaultModel,
		BucketEditable: BucketEditable{
			Name:          model.Name,
			MonthlyTarget: model.MonthlyTarget,
			Color:         model.Color,
		},
		CurrentBalance: model.CurrentBalance,
		Links: BucketLinks{
			Self:        fmt.Sprintf("%s/v1/buckets/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/buckets/%s/allocations", url, model.ID),
		},
	}
}

type BucketResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Bucket `json:"data"`                                                          // The resource
}

type BucketListResponse struct {
	Data       []Bucket    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BucketDeleteResponse struct {
	Error          *string      `json:"error" example:"there is no bucket matching your query"` // The error, if any occurred
	Message        *string      `json:"message" example:"bucket deleted, balance released"`     // Confirmation message
	ReleasedAmount *types.Money `json:"releasedAmount" example:"120.00"`                        // Balance released back into the unallocated pool
}

type BucketQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in the name
	Color  string `form:"color"`                      // By color
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first bucket returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of buckets to return. Defaults to 50.
}

func (f BucketQueryFilter) model() models.Bucket {
	// The string fields are not set here since they are
	// handled explicitly in the controller function
	return models.Bucket{
		Color: f.Color,
	}
}

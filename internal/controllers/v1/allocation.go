package v1

import (
	"fmt"
	"net/http"

	"github.com/bucketly/backend/internal/engine"
	"github.com/bucketly/backend/internal/httputil"
	"github.com/bucketly/backend/internal/identity"
	"github.com/bucketly/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id}/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Bucket{}, "id = ? AND owner_id = ?", uri.ID.UUID, identity.OwnerID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allocate money
// @Description	Moves money between the unallocated pool and the bucket. Direction "add" allocates to the bucket, "remove" releases money back into the pool.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/buckets/{id}/allocations [post]
func CreateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var editable AllocationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	owner := identity.OwnerID(c)

	var result engine.Result
	var message string

	switch editable.Direction {
	case DirectionAdd:
		result, err = allocator.Allocate(c.Request.Context(), owner, uri.ID.UUID, editable.Amount)
		message = fmt.Sprintf("allocated %s to the bucket", editable.Amount)
	case DirectionRemove:
		result, err = allocator.Deallocate(c.Request.Context(), owner, uri.ID.UUID, editable.Amount)
		message = fmt.Sprintf("released %s back into the unallocated pool", editable.Amount)
	default:
		err = errDirectionInvalid
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, AllocationResponse{
		Data: &AllocationResult{
			NewBalance:     result.NewBalance,
			NewUnallocated: result.NewUnallocated,
			Message:        message,
		},
	})
}

// @Summary		List allocations
// @Description	Returns the audit log of all balance changes of the bucket, newest first
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationEventListResponse
// @Failure		400	{object}	AllocationEventListResponse
// @Failure		404	{object}	AllocationEventListResponse
// @Failure		500	{object}	AllocationEventListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id}/allocations [get]
func GetAllocations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationEventListResponse{
			Error: &s,
		})
		return
	}

	var bucket models.Bucket

	// Unscoped: the audit log of deleted buckets stays readable
	err = models.DB.Unscoped().First(&bucket, "id = ? AND owner_id = ?", uri.ID.UUID, identity.OwnerID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationEventListResponse{
			Error: &s,
		})
		return
	}

	events, err := bucket.Events(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationEventListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationEventListResponse{Data: events})
}

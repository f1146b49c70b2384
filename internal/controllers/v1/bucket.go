package v1

import (
	"net/http"

	"github.com/bucketly/backend/internal/httputil"
	"github.com/bucketly/backend/internal/identity"
	"github.com/bucketly/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBucketRoutes registers the routes for buckets with
// the RouterGroup that is passed.
func RegisterBucketRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBucketList)
		r.GET("", GetBuckets)
		r.POST("", CreateBucket)
	}

	// Bucket with ID
	{
		r.OPTIONS("/:id", OptionsBucketDetail)
		r.GET("/:id", GetBucket)
		r.PATCH("/:id", UpdateBucket)
		r.DELETE("/:id", DeleteBucket)
	}

	// Allocations of a bucket
	{
		r.OPTIONS("/:id/allocations", OptionsAllocationList)
		r.GET("/:id/allocations", GetAllocations)
		r.POST("/:id/allocations", CreateAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets [options]
func OptionsBucketList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [options]
func OptionsBucketDetail(c *gin.Context) {
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

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bucket
// @Description	Creates a new bucket with a zero balance
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BucketResponse
// @Failure		400		{object}	BucketResponse
// @Failure		409		{object}	BucketResponse
// @Failure		500		{object}	BucketResponse
// @Param			bucket	body		BucketEditable	true	"Bucket"
// @Router			/v1/buckets [post]
func CreateBucket(c *gin.Context) {
	var editable BucketEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	bucket, err := allocator.CreateBucket(c.Request.Context(), identity.OwnerID(c), editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &e,
		})
		return
	}

	data := newBucket(c, bucket)
	c.JSON(http.StatusCreated, BucketResponse{Data: &data})
}

// @Summary		List buckets
// @Description	Returns a list of the owner's active buckets
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketListResponse
// @Failure		500	{object}	BucketListResponse
// @Router			/v1/buckets [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			color	query	string	false	"Filter by color"
// @Param			offset	query	uint	false	"The offset of the first bucket returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of buckets to return. Defaults to 50."
func GetBuckets(c *gin.Context) {
	var filter BucketQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	filterModel.OwnerID = identity.OwnerID(c)

	// Always sort by creation, oldest bucket first
	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, append(queryFields, "OwnerID")...)

	q = stringFilters(q, setFields, filter.Name, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 buckets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var buckets []models.Bucket
	err := q.Find(&buckets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BucketListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Bucket, 0, len(buckets))
	for _, bucket := range buckets {
		data = append(data, newBucket(c, bucket))
	}

	c.JSON(http.StatusOK, BucketListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bucket
// @Description	Returns a specific bucket
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketResponse
// @Failure		400	{object}	BucketResponse
// @Failure		404	{object}	BucketResponse
// @Failure		500	{object}	BucketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [get]
func GetBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	var bucket models.Bucket
	err = models.DB.First(&bucket, "id = ? AND owner_id = ?", uri.ID.UUID, identity.OwnerID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	data := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &data})
}

// @Summary		Update bucket
// @Description	Update an existing bucket. Only values to be updated need to be specified. The balance is not editable.
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BucketResponse
// @Failure		400		{object}	BucketResponse
// @Failure		404		{object}	BucketResponse
// @Failure		409		{object}	BucketResponse
// @Failure		500		{object}	BucketResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bucket	body		BucketEditable	true	"Bucket"
// @Router			/v1/buckets/{id} [patch]
func UpdateBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BucketEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	var data BucketEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	bucket, err := allocator.UpdateBucket(c.Request.Context(), identity.OwnerID(c), uri.ID.UUID, data.model(), updateFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketResponse{
			Error: &s,
		})
		return
	}

	r := newBucket(c, bucket)
	c.JSON(http.StatusOK, BucketResponse{Data: &r})
}

// @Summary		Delete bucket
// @Description	Deletes a bucket. Its balance is released back into the unallocated pool.
// @Tags			Buckets
// @Produce		json
// @Success		200	{object}	BucketDeleteResponse
// @Failure		400	{object}	BucketDeleteResponse
// @Failure		404	{object}	BucketDeleteResponse
// @Failure		500	{object}	BucketDeleteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/buckets/{id} [delete]
func DeleteBucket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketDeleteResponse{
			Error: &s,
		})
		return
	}

	released, err := allocator.DeleteBucket(c.Request.Context(), identity.OwnerID(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BucketDeleteResponse{
			Error: &s,
		})
		return
	}

	message := "the bucket was deleted and its balance released back into the unallocated pool"
	c.JSON(http.StatusOK, BucketDeleteResponse{
		Message:        &message,
		ReleasedAmount: &released,
	})
}

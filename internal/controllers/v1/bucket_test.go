package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/bucketly/backend/internal/controllers/v1"
	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
	"github.com/bucketly/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBucketsWithoutIdentity() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/buckets"},
		{http.MethodPost, "/v1/buckets"},
		{http.MethodGet, fmt.Sprintf("/v1/buckets/%s", uuid.New())},
		{http.MethodPatch, fmt.Sprintf("/v1/buckets/%s", uuid.New())},
		{http.MethodDelete, fmt.Sprintf("/v1/buckets/%s", uuid.New())},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), tt.method, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	}
}

func (suite *TestSuiteStandard) TestBucketsInvalidIdentity() {
	recorder := test.RequestAs(suite.T(), "not-a-uuid", http.MethodGet, "/v1/buckets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCreateBucket() {
	owner := uuid.NewString()

	bucket := suite.createTestBucket(owner, v1.BucketEditable{
		Name:          "Groceries",
		MonthlyTarget: types.NewMoney(30000),
	})

	assert.Equal(suite.T(), "Groceries", bucket.Name)
	assert.True(suite.T(), bucket.CurrentBalance.IsZero())
	assert.Equal(suite.T(), models.DefaultBucketColor, bucket.Color)
	assert.Contains(suite.T(), bucket.Links.Self, fmt.Sprintf("/v1/buckets/%s", bucket.ID))
	assert.Contains(suite.T(), bucket.Links.Allocations, fmt.Sprintf("/v1/buckets/%s/allocations", bucket.ID))
}

func (suite *TestSuiteStandard) TestCreateBucketErrors() {
	owner := uuid.NewString()
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"empty name", v1.BucketEditable{}, http.StatusBadRequest},
		{"duplicate name", v1.BucketEditable{Name: "Groceries"}, http.StatusConflict},
		{"duplicate name other case", v1.BucketEditable{Name: "GROCERIES"}, http.StatusConflict},
		{"negative target", map[string]string{"name": "Rent", "monthlyTarget": "-10.00"}, http.StatusBadRequest},
		{"too many decimals", map[string]string{"name": "Rent", "monthlyTarget": "10.001"}, http.StatusBadRequest},
		{"broken json", `{ "name": `, http.StatusBadRequest},
		{"empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := test.RequestAs(suite.T(), owner, http.MethodPost, "/v1/buckets", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

		var response v1.BucketResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.NotNil(suite.T(), response.Error, tt.name)
	}
}

func (suite *TestSuiteStandard) TestCreateBucketDuplicateNameOtherOwner() {
	_ = suite.createTestBucket(uuid.NewString(), v1.BucketEditable{Name: "Groceries"})
	_ = suite.createTestBucket(uuid.NewString(), v1.BucketEditable{Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestGetBuckets() {
	owner := uuid.NewString()
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Rent"})

	// Another owner's buckets are invisible
	_ = suite.createTestBucket(uuid.NewString(), v1.BucketEditable{Name: "Vacation"})

	recorder := test.RequestAs(suite.T(), owner, http.MethodGet, "/v1/buckets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BucketListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	// Oldest first
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
	assert.Equal(suite.T(), "Rent", response.Data[1].Name)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetBucketsFilter() {
	owner := uuid.NewString()
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Rainy day", Color: "#ff0000"})
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Rent", Color: "#ff0000"})

	tests := []struct {
		query string
		count int
	}{
		{"search=r", 3},
		{"search=ren", 1},
		{"name=Groceries", 1},
		{"color=%23ff0000", 2},
		{"limit=1", 1},
		{"offset=2", 1},
		{"search=nothinglikethis", 0},
	}

	for _, tt := range tests {
		recorder := test.RequestAs(suite.T(), owner, http.MethodGet, fmt.Sprintf("/v1/buckets?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.BucketListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetBucket() {
	owner := uuid.NewString()
	bucket := suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})

	recorder := test.RequestAs(suite.T(), owner, http.MethodGet, bucket.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), bucket.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetBucketErrors() {
	owner := uuid.NewString()

	// A bucket of another owner is indistinguishable from an absent one
	other := suite.createTestBucket(uuid.NewString(), v1.BucketEditable{Name: "Groceries"})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"invalid UUID", "/v1/buckets/not-a-uuid", http.StatusBadRequest},
		{"unknown bucket", fmt.Sprintf("/v1/buckets/%s", uuid.New()), http.StatusNotFound},
		{"other owner's bucket", fmt.Sprintf("/v1/buckets/%s", other.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		recorder := test.RequestAs(suite.T(), owner, http.MethodGet, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}
}

func (suite *TestSuiteStandard) TestUpdateBucket() {
	owner := uuid.NewString()
	bucket := suite.createTestBucket(owner, v1.BucketEditable{
		Name:          "Groceries",
		MonthlyTarget: types.NewMoney(30000),
	})

	recorder := test.RequestAs(suite.T(), owner, http.MethodPatch, bucket.Links.Self, map[string]string{
		"name": "Food",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Food", response.Data.Name)

	// Fields missing from the body keep their value
	assert.Equal(suite.T(), types.NewMoney(30000), response.Data.MonthlyTarget)
}

func (suite *TestSuiteStandard) TestUpdateBucketErrors() {
	owner := uuid.NewString()
	_ = suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})
	bucket := suite.createTestBucket(owner, v1.BucketEditable{Name: "Rent"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"invalid UUID", "/v1/buckets/not-a-uuid", map[string]string{"name": "Food"}, http.StatusBadRequest},
		{"unknown bucket", fmt.Sprintf("/v1/buckets/%s", uuid.New()), map[string]string{"name": "Food"}, http.StatusNotFound},
		{"duplicate name", bucket.Links.Self, map[string]string{"name": "Groceries"}, http.StatusConflict},
		{"negative target", bucket.Links.Self, map[string]string{"monthlyTarget": "-1.00"}, http.StatusBadRequest},
		{"broken json", bucket.Links.Self, `{ "name": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := test.RequestAs(suite.T(), owner, http.MethodPatch, tt.path, tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}
}

func (suite *TestSuiteStandard) TestDeleteBucket() {
	owner := uuid.NewString()
	suite.createTestIncome(owner, types.NewMoney(50000))
	bucket := suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})

	recorder := test.RequestAs(suite.T(), owner, http.MethodPost, bucket.Links.Allocations, map[string]string{
		"amount":    "120.00",
		"direction": "add",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.RequestAs(suite.T(), owner, http.MethodDelete, bucket.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BucketDeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.ReleasedAmount)
	assert.Equal(suite.T(), types.NewMoney(12000), *response.ReleasedAmount)

	// The bucket is gone, deletion is terminal
	recorder = test.RequestAs(suite.T(), owner, http.MethodGet, bucket.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.RequestAs(suite.T(), owner, http.MethodDelete, bucket.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBucketErrors() {
	owner := uuid.NewString()
	other := suite.createTestBucket(uuid.NewString(), v1.BucketEditable{Name: "Groceries"})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"invalid UUID", "/v1/buckets/not-a-uuid", http.StatusBadRequest},
		{"unknown bucket", fmt.Sprintf("/v1/buckets/%s", uuid.New()), http.StatusNotFound},
		{"other owner's bucket", fmt.Sprintf("/v1/buckets/%s", other.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		recorder := test.RequestAs(suite.T(), owner, http.MethodDelete, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}
}

func (suite *TestSuiteStandard) TestBucketOptions() {
	owner := uuid.NewString()
	bucket := suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})

	recorder := test.RequestAs(suite.T(), owner, http.MethodOptions, "/v1/buckets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = test.RequestAs(suite.T(), owner, http.MethodOptions, bucket.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.RequestAs(suite.T(), owner, http.MethodOptions, fmt.Sprintf("/v1/buckets/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

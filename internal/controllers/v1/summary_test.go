package v1_test

import (
	"net/http"

	v1 "github.com/bucketly/backend/internal/controllers/v1"
	"github.com/bucketly/backend/internal/types"
	"github.com/bucketly/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetSummary() {
	owner := uuid.NewString()
	suite.createTestIncome(owner, types.NewMoney(50000))
	bucket := suite.createTestBucket(owner, v1.BucketEditable{Name: "Groceries"})

	recorder := test.RequestAs(suite.T(), owner, http.MethodPost, bucket.Links.Allocations, map[string]string{
		"amount":    "120.00",
		"direction": "add",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.RequestAs(suite.T(), owner, http.MethodGet, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), types.NewMoney(50000), response.Data.TotalIncome)
	assert.Equal(suite.T(), types.NewMoney(12000), response.Data.Allocated)
	assert.Equal(suite.T(), types.NewMoney(38000), response.Data.Unallocated)
}

func (suite *TestSuiteStandard) TestGetSummaryEmpty() {
	recorder := test.RequestAs(suite.T(), uuid.NewString(), http.MethodGet, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalIncome.IsZero())
	assert.True(suite.T(), response.Data.Unallocated.IsZero())
}

func (suite *TestSuiteStandard) TestGetSummaryAfterDelete() {
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

	// The deleted bucket's balance is unallocated again
	recorder = test.RequestAs(suite.T(), owner, http.MethodGet, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Allocated.IsZero())
	assert.Equal(suite.T(), types.NewMoney(50000), response.Data.Unallocated)
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	recorder := test.RequestAs(suite.T(), uuid.NewString(), http.MethodOptions, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.RequestAs(suite.T(), uuid.NewString(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Contains(suite.T(), response.Links.Buckets, "/v1/buckets")
	assert.Contains(suite.T(), response.Links.Income, "/v1/income")
	assert.Contains(suite.T(), response.Links.Summary, "/v1/summary")
}

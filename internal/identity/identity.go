// Package identity extracts the authenticated owner from requests.
//
// Authentication itself is not handled here: a fronting identity
// provider authenticates the caller and injects the owner's UUID into
// the X-Owner-ID header. The backend trusts that header and never
// accepts owner IDs from request bodies or query parameters.
package identity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerHeader is the header the identity provider sets on every
// authenticated request.
const OwnerHeader = "X-Owner-ID"

// contextKey is the gin context key the middleware stores the owner
// UUID under.
const contextKey = "bucketly-owner"

var (
	ErrNoIdentity      = errors.New("no authenticated owner identity was provided with the request")
	ErrInvalidIdentity = errors.New("the provided owner identity is not a valid UUID")
)

// Middleware parses the owner identity and aborts unauthenticated
// requests.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(OwnerHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoIdentity.Error()})
			return
		}

		owner, err := uuid.Parse(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidIdentity.Error()})
			return
		}

		c.Set(contextKey, owner)
		c.Next()
	}
}

// OwnerID returns the authenticated owner for the request. It must only
// be called behind the Middleware.
func OwnerID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextKey).(uuid.UUID)
}

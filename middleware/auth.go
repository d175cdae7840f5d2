package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/config"
)

// ExportScope grants archiving order exports to S3
const ExportScope = "export:orders"

// Context keys filled in once a token has been validated
const (
	userIDKey = "user_id"
	claimsKey = "validated_claims"
)

// CustomClaims carries the space separated scopes Auth0 grants to a token
type CustomClaims struct {
	Scope string `json:"scope"`
}

// Validate accepts any scope string; scopes are checked per route by RequireScope
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// HasScope reports whether scope is one of the granted scopes
func (c CustomClaims) HasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope)
}

func newTokenValidator(cfg *config.Config) (*validator.Validator, error) {
	issuerURL, err := url.Parse("https://" + cfg.Auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH0_DOMAIN %q: %w", cfg.Auth0Domain, err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	return validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Auth0Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
}

func writeInvalidToken(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("rejected token for %s %s: %v", r.Method, r.URL.Path, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, writeErr := w.Write([]byte(`{"success":false,"error":{"code":"INVALID_TOKEN","message":"Failed to validate JWT."}}`)); writeErr != nil {
		log.Printf("Failed to write error response: %v", writeErr)
	}
}

// EnsureValidToken rejects requests without a valid Auth0 bearer token and
// stores the token subject and claims on the context
func EnsureValidToken(cfg *config.Config) gin.HandlerFunc {
	tokenValidator, err := newTokenValidator(cfg)
	if err != nil {
		log.Fatalf("Failed to set up the JWT validator: %v", err)
	}

	checkJWT := jwtmiddleware.New(
		tokenValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(writeInvalidToken),
	)

	return func(c *gin.Context) {
		validated := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			validated = true
			claims := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			c.Set(userIDKey, claims.RegisteredClaims.Subject)
			c.Set(claimsKey, claims)
			c.Next()
		})

		checkJWT.CheckJWT(next).ServeHTTP(c.Writer, c.Request)

		// the rejection is already written; later handlers must not run
		if !validated {
			c.Abort()
		}
	}
}

// GetUserID returns the subject of the validated token
func GetUserID(c *gin.Context) (string, error) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return "", &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	userID, ok := value.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a string"}
	}
	return userID, nil
}

// GetClaims returns the validated token claims
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	claims, ok := value.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}
	return claims, nil
}

func abortAuth(c *gin.Context, status int, err *AuthError) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}

// RequireScope stops requests whose token was not granted scope
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, &AuthError{Code: "MISSING_CLAIMS", Message: "Could not retrieve token claims"})
			return
		}

		granted, ok := claims.CustomClaims.(*CustomClaims)
		if !ok || !granted.HasScope(scope) {
			abortAuth(c, http.StatusForbidden, &AuthError{Code: "INSUFFICIENT_SCOPE", Message: "Insufficient permissions to access this resource"})
			return
		}

		c.Next()
	}
}

// ProtectExports returns the handlers guarding export routes. Without an
// Auth0 domain configured the routes are left open.
func ProtectExports(cfg *config.Config) []gin.HandlerFunc {
	if !cfg.AuthEnabled() {
		log.Println("AUTH0_DOMAIN not set, export routes are unauthenticated")
		return nil
	}
	return []gin.HandlerFunc{EnsureValidToken(cfg), RequireScope(ExportScope)}
}

// AuthError is a token or claims failure with a client-facing code
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

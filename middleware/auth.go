package middleware

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/cardforge/cardforge-api/auth"
)

type contextKey string

// UserContextKey is where the authenticated user id lives in the request
// context, regardless of which token path validated it.
const UserContextKey contextKey = "userID"

// UserID returns the authenticated user id from the request context.
func UserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserContextKey).(string)
	return id, ok && id != ""
}

// EnsureValidToken returns the authentication middleware. With
// AUTH0_DOMAIN set it validates RS256 tokens against the tenant's JWKS;
// otherwise it falls back to local HS256 tokens issued by the auth
// package. Either way the token subject becomes the request's user id.
func EnsureValidToken() (func(http.Handler) http.Handler, error) {
	domain := os.Getenv("AUTH0_DOMAIN")
	if domain == "" {
		return localTokenMiddleware, nil
	}

	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{os.Getenv("AUTH0_AUDIENCE")},
	)
	if err != nil {
		return nil, err
	}

	checkJWT := jwtmiddleware.New(jwtValidator.ValidateToken)

	return func(next http.Handler) http.Handler {
		return checkJWT.CheckJWT(subjectToContext(next))
	}, nil
}

// subjectToContext lifts the validated Auth0 subject into the shared
// user-id context key.
func subjectToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.RegisteredClaims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func localTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		subject, err := auth.VerifyToken(token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

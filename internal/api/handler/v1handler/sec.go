package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"bookstore/internal/config"
	"bookstore/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

type subjectKeyType struct{}

//nolint: gochecknoglobals
var subjectKey = subjectKeyType{}

// SecHandlerOptions configures bearer-token verification for the v1 API.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests using RS256-signed bearer tokens and
// stores the token subject in the request context.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{key: key}, nil
}

// Wrap returns next behind bearer-token authentication.
func (s *SecHandler) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			return s.key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil || !parsed.Valid {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "invalid bearer token"))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, subjectKey, claims.Subject)))
	})
}

// GetSubjectFromContext returns the authenticated token subject, or an empty
// string when the request was not authenticated.
func GetSubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)

	return subject
}

package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
	apperrors "github.com/Rafael2sf/ft-transcendence-sub001/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Verifier checks the signed credential presented during the websocket
// handshake. The secret is shared with the auth service that minted it.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT for a specific user.
// The gateway itself never mints tokens; this exists for tests and tooling.
func (v *Verifier) GenerateToken(userID domain.UserID, roles []string,
	tokenDuration time.Duration) (string, error) {
	expirationTime := time.Now().Add(tokenDuration)

	claims := &CustomClaims{
		UserID: string(userID),
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ft-transcendence",
		},
	}

	// HS256 (HMAC with SHA256), same algorithm the auth service uses.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (v *Verifier) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// ResolveIdentity extracts the credential from the handshake request
// (access_token cookie, token query parameter, or bearer header) and
// returns the authenticated user. The caller must terminate the
// connection on failure.
func (v *Verifier) ResolveIdentity(r *http.Request) (domain.UserID, error) {
	tokenString := extractToken(r)
	if tokenString == "" {
		return "", apperrors.ErrUnauthorized
	}

	claims, err := v.ValidateToken(tokenString)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.UserID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return domain.UserID(claims.UserID), nil
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

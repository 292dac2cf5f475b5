package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

const testSecret = "test_secret_for_gateway_tokens"

func TestVerifier_ValidateToken(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)

	// Given a freshly minted token
	token, err := verifier.GenerateToken("alice", []string{"user"}, time.Hour)
	req.NoError(err)

	// When the token is validated
	claims, err := verifier.ValidateToken(token)

	// Then the identity is recovered
	req.NoError(err)
	req.Equal("alice", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)
}

func TestVerifier_ExpiredToken(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)

	// Given a token that expired in the past
	token, err := verifier.GenerateToken("alice", nil, -time.Minute)
	req.NoError(err)

	// When the token is validated
	_, err = verifier.ValidateToken(token)

	// Then validation fails
	req.Error(err)
}

func TestVerifier_WrongSecret(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)
	other := NewVerifier("a_completely_different_secret")

	token, err := other.GenerateToken("alice", nil, time.Hour)
	req.NoError(err)

	_, err = verifier.ValidateToken(token)
	req.Error(err)
}

func TestVerifier_ResolveIdentity_Cookie(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)
	token, err := verifier.GenerateToken("bob", nil, time.Hour)
	req.NoError(err)

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	userID, err := verifier.ResolveIdentity(r)
	req.NoError(err)
	req.Equal(domain.UserID("bob"), userID)
}

func TestVerifier_ResolveIdentity_QueryAndHeader(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)
	token, err := verifier.GenerateToken("bob", nil, time.Hour)
	req.NoError(err)

	byQuery := httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil)
	userID, err := verifier.ResolveIdentity(byQuery)
	req.NoError(err)
	req.Equal(domain.UserID("bob"), userID)

	byHeader := httptest.NewRequest(http.MethodGet, "/ws", nil)
	byHeader.Header.Set("Authorization", "Bearer "+token)
	userID, err = verifier.ResolveIdentity(byHeader)
	req.NoError(err)
	req.Equal(domain.UserID("bob"), userID)
}

func TestVerifier_ResolveIdentity_Missing(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)

	_, err := verifier.ResolveIdentity(r)
	req.Error(err)
}

func TestVerifier_ResolveIdentity_Garbage(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier(testSecret)

	r := httptest.NewRequest(http.MethodGet, "/ws?token=not.a.jwt", nil)

	_, err := verifier.ResolveIdentity(r)
	req.Error(err)
}

package token_test

import (
	"testing"
	"time"

	"jobdesk-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	tok, err := m.Issue("user-1", "a@b.com", "seeker")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "seeker", claims.Role)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := token.NewManager("test-secret", -time.Minute)

	tok, err := m.Issue("user-1", "a@b.com", "seeker")
	assert.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := token.NewManager("secret-a", time.Hour)
	verifier := token.NewManager("secret-b", time.Hour)

	tok, err := issuer.Issue("user-1", "a@b.com", "employer")
	assert.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.Error(t, err)
}

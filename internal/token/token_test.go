package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/snakearcade-go/internal/dependencies/mocks"
)

func TestIssueAndVerify(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	signer := NewSigner([]byte("test-secret"), 30*time.Minute, clk)

	tok, err := signer.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := signer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestVerifyFailsAfterExpiry(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	signer := NewSigner([]byte("test-secret"), 30*time.Minute, clk)

	tok, err := signer.Issue("alice@example.com")
	require.NoError(t, err)

	clk.Advance(31 * time.Minute)

	_, err = signer.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyFailsWithDifferentSecret(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	signer := NewSigner([]byte("test-secret"), 30*time.Minute, clk)
	other := NewSigner([]byte("other-secret"), 30*time.Minute, clk)

	tok, err := signer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyFailsWithGarbage(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	signer := NewSigner([]byte("test-secret"), 30*time.Minute, clk)

	_, err := signer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestZeroTTLDefaultsToThirtyMinutes(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	signer := NewSigner([]byte("test-secret"), 0, clk)

	tok, err := signer.Issue("alice@example.com")
	require.NoError(t, err)

	clk.Advance(29 * time.Minute)
	_, err = signer.Verify(tok)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = signer.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

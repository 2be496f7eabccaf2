package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/jwtx"
)

func newTestSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := newTestSigner(t, "key-1")

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "test-issuer")

	claims := jwtx.NewSessionClaims(
		"acc-123", "Alice", "alice@example.com", "CANDIDATE",
		false, time.Hour, "test-issuer", time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "acc-123", got.Subject)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "CANDIDATE", got.Role)
	require.False(t, got.OnboardingCompleted)
}

func TestVerifyRejectsUnknownKID(t *testing.T) {
	signer := newTestSigner(t, "key-1")
	other := newTestSigner(t, "key-2")

	keys := jwtx.NewKeySet()
	keys.AddSigner(other)
	verifier := jwtx.NewVerifierEdDSA(keys, "test-issuer")

	claims := jwtx.NewSessionClaims(
		"acc-123", "", "", "ADMIN", true, time.Hour, "test-issuer", time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := newTestSigner(t, "key-1")

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "expected-issuer")

	claims := jwtx.NewSessionClaims(
		"acc-123", "", "", "ADMIN", true, time.Hour, "other-issuer", time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := newTestSigner(t, "key-1")

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "test-issuer")

	claims := jwtx.NewSessionClaims(
		"acc-123", "", "", "COMPANY", true, time.Hour, "test-issuer",
		time.Now().UTC().Add(-2*time.Hour),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer := newTestSigner(t, "key-1")

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "test-issuer")

	claims := jwtx.NewSessionClaims(
		"acc-123", "", "", "CANDIDATE", false, time.Hour, "test-issuer", time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Flip a payload byte
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = verifier.Verify(string(tampered))
	require.Error(t, err)
}

func TestKeySetIsReady(t *testing.T) {
	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())

	keys.AddSigner(newTestSigner(t, "key-1"))
	require.True(t, keys.IsReady())

	_, err := keys.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

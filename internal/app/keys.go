package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joblinkhq/joblink/pkg/cryptox"
	"github.com/joblinkhq/joblink/pkg/jwtx"
)

// InitSessionKeys loads or generates the Ed25519 key pair that signs
// session tokens.
//
// With SessionKeyFile set, the PEM-encoded private key is read from disk so
// sessions survive restarts. Without it an ephemeral key is generated on
// startup, which invalidates every outstanding session.
func InitSessionKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	var pemKey []byte

	if cfg.SessionKeyFile != "" {
		data, err := os.ReadFile(cfg.SessionKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read session key file: %w", err)
		}
		pemKey = data
		logger.Info("session signing key loaded", "path", cfg.SessionKeyFile)
	} else {
		data, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		pemKey = data
		logger.Warn("ephemeral session key generated, existing sessions are now invalid")
	}

	kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate key id: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build session signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	return signer, keys, nil
}

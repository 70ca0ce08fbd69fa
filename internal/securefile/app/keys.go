package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/securefile/pkg/cryptox"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
)

// InitSessionKey builds the HS256 signer for session tokens.
//
// With SECUREFILE_TOKEN_SECRET unset a random key is generated, so every
// restart signs everyone out. That matches the in-memory store, which
// forgets all sessions on restart anyway.
func InitSessionKey(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		var err error
		secret, err = cryptox.GenerateSecret(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		logger.Info("generated ephemeral session key")
	}

	signer, err := jwtx.NewHS256(secret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("invalid SECUREFILE_TOKEN_SECRET (need at least %d bytes): %w", jwtx.MinSecretSize, err)
	}

	logger.Info("session key ready",
		"algorithm", signer.Alg(),
		"issuer", cfg.Issuer,
		"fingerprint", cryptox.FingerprintToken(string(secret)),
	)
	return signer, nil
}

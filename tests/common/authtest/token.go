//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"vmarket/internal/pkg/config"
	"vmarket/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenFor signs an access token the way the external identity provider
// would, using the configured verification secret.
func TokenFor(t *testing.T, cfg config.Config, userID uuid.UUID, username string) string {
	t.Helper()

	token, err := jwt.NewService(cfg.JWT.Secret).GenerateToken(userID, username, time.Hour)
	require.NoError(t, err, "Failed to sign test token")
	return token
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/dayglow/internal/auth"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testUserID = "3f1c9c6e-2b0a-4c1e-9a55-3f8f1f2f5a01"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("AUTH_ISSUER", "dayglow-test")
	for _, key := range []string{"DAYGLOW_CONFIG", "DB_DRIVER", "LLM_PROVIDER", "LLM_TIMEOUT", "LOG_LEVEL", "TZ"} {
		t.Setenv(key, "")
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCommandPrintsVerifiableToken(t *testing.T) {
	setTestEnv(t)

	output, err := executeRoot(t, "token", "--user", testUserID, "--ttl", "1h")
	require.NoError(t, err)

	token := strings.TrimSpace(output)
	require.NotEmpty(t, token)

	userID, err := auth.NewVerifier([]byte(testSecret), "dayglow-test").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestTokenCommandRejectsNonUUIDUser(t *testing.T) {
	setTestEnv(t)

	_, err := executeRoot(t, "token", "--user", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidSubject)
}

func TestTokenCommandRequiresUserFlag(t *testing.T) {
	setTestEnv(t)

	_, err := executeRoot(t, "token")
	assert.Error(t, err)
}

func TestTokenCommandFailsWithoutSecret(t *testing.T) {
	setTestEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := executeRoot(t, "token", "--user", testUserID)
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}

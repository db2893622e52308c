package logger

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"api_key", "abc123",
		"Authorization", "Bearer x",
		"endpoint", "http://localhost:7200",
	})
	require.Len(t, out, 6)
	assert.Equal(t, "[REDACTED]", out[1])
	assert.Equal(t, "[REDACTED]", out[3])
	assert.Equal(t, "http://localhost:7200", out[5])
}

func TestSanitizeKVsHashesUserIDs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", "42"})
	require.Len(t, out, 2)
	hashed, ok := out[1].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(hashed, "hash:"))
	assert.NotContains(t, hashed, "42")
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"query", "SELECT", "dangling"})
	assert.Equal(t, []interface{}{"query", "SELECT", "dangling"}, out)
}

func TestLooksLikeJWT(t *testing.T) {
	assert.True(t, looksLikeJWT("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.sig"))
	assert.False(t, looksLikeJWT("http://knowledgemap.kr/koah/def/BeautySalon"))
}

func TestSanitizeKVsRedactsServiceCredentials(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"db_dsn", "postgres://app:pw@db:5432/animalloo",
		"opendata_service_key", "6b4a5d",
		"jwt_secret_key", "s3cr3t",
		"graph_endpoint", "http://admin:pw@localhost:7200/repositories/knowledgemap",
	})
	require.Len(t, out, 8)
	assert.Equal(t, "[REDACTED]", out[1])
	assert.Equal(t, "[REDACTED]", out[3])
	assert.Equal(t, "[REDACTED]", out[5])
	assert.Equal(t, "http://localhost:7200/repositories/knowledgemap", out[7])
}

func TestSanitizeKVsTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("가", maxValueLen)
	out := sanitizeKVs([]interface{}{"query", long})
	got, ok := out[1].(string)
	require.True(t, ok)
	assert.Less(t, len(got), len(long))
	assert.Contains(t, got, "...(+")
	prefix := got[:strings.Index(got, "...(+")]
	assert.True(t, utf8.ValidString(prefix))
}

package archive

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pg-backoffice/internal/models"
)

func TestEncodeJSONLines(t *testing.T) {
	items := []models.Activity{
		{ID: "1", Type: "user_login", Title: "Login", UserID: "a1", UserRole: "admin", Category: "authentication"},
		{ID: "2", Type: "user_logout", Title: "Logout", UserID: "a1", UserRole: "admin", Category: "authentication"},
	}

	body, err := EncodeJSONLines(items)
	require.NoError(t, err)

	sc := bufio.NewScanner(bytes.NewReader(body))
	var ids []string
	for sc.Scan() {
		var a models.Activity
		require.NoError(t, json.Unmarshal(sc.Bytes(), &a))
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestNewS3Store_CustomEndpoint(t *testing.T) {
	s := NewS3Store(Options{Bucket: "archive", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"})
	assert.Equal(t, "archive", s.bucket)
	assert.NotNil(t, s.client)
}

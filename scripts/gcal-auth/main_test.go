package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestAuthorize_WritesToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`))
	}))
	defer ts.Close()

	config := &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{AuthURL: ts.URL + "/auth", TokenURL: ts.URL + "/token"},
	}
	tokenPath := filepath.Join(t.TempDir(), "token.json")
	var out bytes.Buffer

	err := authorize(context.Background(), config, strings.NewReader("the-code\n"), &out, tokenPath)
	require.NoError(t, err)
	assert.Contains(t, out.String(), ts.URL+"/auth")

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	var tok oauth2.Token
	require.NoError(t, json.Unmarshal(data, &tok))
	assert.Equal(t, "at", tok.AccessToken)
	assert.Equal(t, "rt", tok.RefreshToken)
}

func TestAuthorize_EmptyCode(t *testing.T) {
	config := &oauth2.Config{Endpoint: oauth2.Endpoint{AuthURL: "http://localhost/auth"}}

	err := authorize(context.Background(), config, strings.NewReader("\n"), &bytes.Buffer{}, filepath.Join(t.TempDir(), "t.json"))
	assert.Error(t, err)
}

func TestLoadOAuthConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"installed":{"client_id":"id","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`), 0o600))

	config, err := loadOAuthConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "id", config.ClientID)

	_, err = loadOAuthConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

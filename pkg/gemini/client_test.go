package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bbip/pkg/gemini"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if r.URL.Path != "/models/"+gemini.DefaultModel+":generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"role": "model",
						"parts": [{"text": "[{\"title\":"}, {"text": "\"회의\"}]"}]
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 5, "candidatesTokenCount": 3, "totalTokenCount": 8}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		zero := 0.0
		resp, err := client.GenerateContent(context.Background(), &gemini.GenerateRequest{
			Contents:         []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "9시 회의"}}}},
			GenerationConfig: &gemini.GenerationConfig{Temperature: &zero},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := resp.Text(); got != `[{"title":"회의"}]` {
			t.Errorf("unexpected text: %s", got)
		}
		if resp.UsageMetadata == nil || resp.UsageMetadata.TotalTokenCount != 8 {
			t.Errorf("unexpected usage: %+v", resp.UsageMetadata)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Flow", func(t *testing.T) {
		bad, _ := gemini.New(gemini.Config{APIKey: "wrong", APIURL: ts.URL})
		_, err := bad.GenerateContent(context.Background(), &gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hello"}}}},
		})
		if err == nil {
			t.Fatalf("expected error for bad key")
		}
	})
}

func TestGenerateResponse_TextEmpty(t *testing.T) {
	var resp *gemini.GenerateResponse
	if resp.Text() != "" {
		t.Errorf("nil response should have empty text")
	}
	if (&gemini.GenerateResponse{}).Text() != "" {
		t.Errorf("no candidates should have empty text")
	}
}

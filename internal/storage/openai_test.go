package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractorResponse(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestExtractorClient_Extract(t *testing.T) {
	var gotAuth string
	var gotReq chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(extractorResponse(
			`{"cuisine_preferences":["Italian"],"dietary_restrictions":["vegetarian"],"budget_max":40,"alcohol_preference":"required"}`)))
	}))
	defer server.Close()

	client := NewExtractorClient(server.URL, "secret-key", "gpt-4o-mini", 5*time.Second)
	extracted, err := client.Extract(context.Background(), "italian dinner, mostly vegetarian, wine, max 40", time.Now(), "Amsterdam")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "Amsterdam")

	assert.Equal(t, []string{"Italian"}, extracted.CuisinePreferences)
	assert.Equal(t, []string{"vegetarian"}, extracted.DietaryRestrictions)
	require.NotNil(t, extracted.BudgetMax)
	assert.Equal(t, 40.0, *extracted.BudgetMax)
}

func TestExtractorClient_Extract_CodeFencedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(extractorResponse("```json\n{\"occasion\":\"birthday\"}\n```")))
	}))
	defer server.Close()

	client := NewExtractorClient(server.URL, "", "gpt-4o-mini", 5*time.Second)
	extracted, err := client.Extract(context.Background(), "birthday dinner", time.Now(), "Amsterdam")
	require.NoError(t, err)
	require.NotNil(t, extracted.Occasion)
	assert.Equal(t, "birthday", *extracted.Occasion)
}

func TestExtractorClient_Extract_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewExtractorClient(server.URL, "", "gpt-4o-mini", 5*time.Second)
	_, err := client.Extract(context.Background(), "anything", time.Now(), "Amsterdam")
	assert.ErrorContains(t, err, "status 500")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

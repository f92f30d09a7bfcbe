package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// GraphQLError is one entry of the errors array of a GraphQL response.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Extensions map[string]interface{} `json:"extensions"`
}

// GraphQLResponse is a decoded GraphQL response whose data is left raw.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// GraphQLTestClient sends GraphQL operations through the HTTP handler stack.
type GraphQLTestClient struct {
	handler http.Handler
}

// NewGraphQLTestClient creates a test client for the schema, wrapped in the given middlewares
// (outermost first).
func NewGraphQLTestClient(schema *graphql.Schema, middlewares ...func(http.Handler) http.Handler) *GraphQLTestClient {
	var h http.Handler = &relay.Handler{Schema: schema}
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return &GraphQLTestClient{handler: h}
}

// Do executes the operation with an optional Authorization header.
func (c *GraphQLTestClient) Do(query string, variables map[string]interface{}, token string) (*GraphQLResponse, error) {
	requestPayload := map[string]interface{}{
		"query": query,
	}
	if len(variables) > 0 {
		requestPayload["variables"] = variables
	}

	jsonBytes, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := httptest.NewRequest("POST", "/query", bytes.NewReader(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var response GraphQLResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &response, nil
}

// Decode unmarshals the data of a response without errors.
func (r *GraphQLResponse) Decode(target interface{}) error {
	if len(r.Errors) > 0 {
		return fmt.Errorf("graphql errors: %v", r.Errors)
	}

	return json.Unmarshal(r.Data, target)
}

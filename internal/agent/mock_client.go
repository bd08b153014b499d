package agent

import (
	"context"
	"strings"
	"sync"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

// MockCall records one request made to a MockClient.
type MockCall struct {
	System      string
	User        string
	Operation   string
	Temperature float32
}

// MockClient provides fake AI responses for testing. Responses are keyed by
// operation name; an error registered for an operation wins over a response.
type MockClient struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []MockCall
	// block, when set, is waited on before answering.
	block chan struct{}
}

// NewMockClient creates a mock AI client with plausible default replies.
func NewMockClient() *MockClient {
	return &MockClient{
		responses: map[string]string{
			string(RoleStoryteller): `{
				"title": "The Clockmaker's Widow",
				"content": "The fog lay thick upon Whitechapel.\nMrs. Ashbourne wound the brass heart once more."
			}`,
			string(RoleAnalyst): `{
				"vocabulary": [
					{"id": "v1", "word": "fog", "translation": "雾", "definition": "薄雾", "partOfSpeech": "noun"}
				],
				"grammar": [
					{"sentence": "The fog lay thick upon Whitechapel.", "rule": "Inversion-free locative", "explanation": "地点状语"}
				]
			}`,
			string(RoleArchivist): `{
				"name": "Dr. Johnathan Ashbourne",
				"description": "A physician of uncertain repute whose gloves are never removed."
			}`,
		},
		errs: make(map[string]error),
	}
}

// SetResponse replaces the reply for an operation.
func (m *MockClient) SetResponse(operation, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[operation] = response
}

// SetError makes every call for an operation fail with err.
func (m *MockClient) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[operation] = err
}

// Block holds every call until the returned release func is invoked.
func (m *MockClient) Block() (release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan struct{})
	m.block = ch
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Calls returns a copy of the recorded requests.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// CompleteJSONWithSystem returns the canned reply for the request's operation.
func (m *MockClient) CompleteJSONWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error) {
	o := collectOptions(opts)

	m.mu.Lock()
	call := MockCall{System: systemPrompt, User: userPrompt, Operation: o.Operation}
	if o.Temperature != nil {
		call.Temperature = *o.Temperature
	}
	m.calls = append(m.calls, call)
	block := m.block
	err := m.errs[o.Operation]
	response, ok := m.responses[o.Operation]
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	if !ok {
		return `{"message": "Mock response"}`, nil
	}

	if strings.TrimSpace(response) == "" {
		return "", quillerrors.ErrEmptyResponse
	}
	return response, nil
}

package agent

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

func TestAgentExecuteJSON(t *testing.T) {
	mock := NewMockClient()
	a := New(mock, RoleArchivist, ArchivistTemperature)

	out, err := a.ExecuteJSON(context.Background(), map[string]string{
		"Language":    "German",
		"Category":    "Character",
		"Name":        "John",
		"Description": "a doctor",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Ashbourne")

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "archivist", calls[0].Operation)
	assert.Equal(t, ArchivistTemperature, calls[0].Temperature)
	assert.Contains(t, calls[0].System, "Write the output in German.")
	assert.Contains(t, calls[0].User, "Draft Name: John")
}

func TestAgentNilClient(t *testing.T) {
	a := New(nil, RoleStoryteller, StorytellerTemperature)
	_, err := a.ExecuteJSON(context.Background(), nil)
	assert.ErrorIs(t, err, quillerrors.ErrMissingCredential)
}

func TestAgentTemplateError(t *testing.T) {
	mock := NewMockClient()
	cache := NewPromptCacheFS(fstest.MapFS{
		"storyteller_system.tmpl": {Data: []byte("{{.Missing}}")},
		"storyteller_user.tmpl":   {Data: []byte("x")},
	})
	a := New(mock, RoleStoryteller, StorytellerTemperature).WithPromptCache(cache)

	_, err := a.ExecuteJSON(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Empty(t, mock.Calls(), "no request may be sent when rendering fails")
}

func TestAgentPropagatesClientError(t *testing.T) {
	mock := NewMockClient()
	boom := errors.New("boom")
	mock.SetError(string(RoleAnalyst), boom)

	a := NewAgentFactory(mock, nil).Analyst()
	_, err := a.ExecuteJSON(context.Background(), map[string]string{
		"Language":            "English",
		"ExplanationLanguage": "Simplified Chinese",
		"Content":             "text",
	})
	assert.ErrorIs(t, err, boom)
}

func TestFactoryTemperatures(t *testing.T) {
	f := NewAgentFactory(NewMockClient(), nil)
	assert.Equal(t, float32(0.8), f.Storyteller().Temperature())
	assert.Equal(t, float32(0.2), f.Analyst().Temperature())
	assert.Equal(t, float32(0.7), f.Archivist().Temperature())
	assert.Equal(t, RoleArchivist, f.Archivist().Role())
}

func TestMockClientEmptyResponse(t *testing.T) {
	mock := NewMockClient()
	mock.SetResponse("storyteller", "   ")
	_, err := mock.CompleteJSONWithSystem(context.Background(), "", "", WithOperation("storyteller"))
	assert.ErrorIs(t, err, quillerrors.ErrEmptyResponse)
}

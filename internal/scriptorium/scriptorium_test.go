package scriptorium

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Evrosil/The-Aetherial-Quill/internal/agent"
	"github.com/Evrosil/The-Aetherial-Quill/internal/annotate"
	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
	"github.com/Evrosil/The-Aetherial-Quill/internal/state"
	"github.com/Evrosil/The-Aetherial-Quill/internal/storage"
	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

// The opencensus view worker is started at init by the genai client's
// dependencies.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var fixedNow = time.Date(1895, time.October, 17, 21, 0, 0, 0, time.UTC)

type fixture struct {
	ws      *Workspace
	mock    *agent.MockClient
	store   *state.Store
	exports *storage.FileSystem
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mock := agent.NewMockClient()
	store := state.New(storage.NewFileSystem(t.TempDir()))
	require.NoError(t, store.Load(context.Background()))
	exports := storage.NewFileSystem(t.TempDir())

	ws := New(muse.New(agent.NewAgentFactory(mock, nil)), store, exports, domain.LangEnglish,
		WithClock(func() time.Time { return fixedNow }))
	return fixture{ws: ws, mock: mock, store: store, exports: exports}
}

func operations(calls []agent.MockCall) []string {
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Operation
	}
	return ops
}

func TestGenerateBlankPromptIsNoop(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("   "))

	got, err := f.ws.Generate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, f.mock.Calls())
	assert.Equal(t, StatusIdle, f.ws.Snapshot().Status)
}

func TestGenerateWithoutLearningMode(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("a séance"))

	got, err := f.ws.Generate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "The Clockmaker's Widow", got.Title)
	assert.Equal(t, "October 17, 1895", got.Date)
	assert.Equal(t, domain.LangEnglish, got.Language)
	assert.Nil(t, got.Learning)

	assert.Equal(t, []string{"storyteller"}, operations(f.mock.Calls()))
	snap := f.ws.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.Same(t, got, snap.Result)
}

func TestGenerateLearningModeAnalysesAfterStory(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("fog"))
	require.NoError(t, f.ws.SetLearningMode(true))
	require.NoError(t, f.ws.SetLanguage(domain.LangGerman))

	got, err := f.ws.Generate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.Learning)
	assert.Len(t, got.Learning.Vocabulary, 1)
	assert.Equal(t, domain.LangGerman, got.Language)

	assert.Equal(t, []string{"storyteller", "analyst"}, operations(f.mock.Calls()))

	paras := f.ws.Annotated()
	require.Len(t, paras, 2)
	hits := annotate.Hits(paras)
	require.Len(t, hits, 1)
	assert.Equal(t, annotate.Grammar, hits[0].Kind, "grammar claims the sentence before vocabulary can")
}

func TestGenerateFailureSetsErrorMessage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("x"))
	f.mock.SetError("storyteller", quillerrors.ErrMissingCredential)

	_, err := f.ws.Generate(context.Background())
	require.Error(t, err)

	snap := f.ws.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.Equal(t, quillerrors.ErrMissingCredential.Error(), snap.Error)
	assert.Nil(t, snap.Result)
}

func TestGenerateAnalysisFailureStillSucceeds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("x"))
	require.NoError(t, f.ws.SetLearningMode(true))
	f.mock.SetError("analyst", errors.New("overloaded"))

	got, err := f.ws.Generate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.Learning)
	assert.True(t, got.Learning.Empty())
	assert.Equal(t, StatusSuccess, f.ws.Snapshot().Status)
}

func TestGenerateJoinsInFlightCall(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SetPrompt("x"))
	release := f.mock.Block()

	var wg sync.WaitGroup
	results := make([]*domain.GeneratedFiction, 2)
	start := func(i int) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = f.ws.Generate(context.Background())
		}()
	}

	start(0)
	require.Eventually(t, func() bool { return len(f.mock.Calls()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, StatusLoading, f.ws.Snapshot().Status)
	assert.ErrorIs(t, f.ws.SetPrompt("other"), quillerrors.ErrBusy)

	start(1)
	// give the second caller time to reach the flight group
	time.Sleep(50 * time.Millisecond)
	release()
	wg.Wait()

	assert.Len(t, f.mock.Calls(), 1, "only one request may be issued")
	require.NotNil(t, results[0])
	assert.Same(t, results[0], results[1])
}

func TestPromote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := domain.VocabItem{ID: "v1", Word: "fog", Translation: "Nebel"}

	added, err := f.ws.Promote(ctx, v)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.ws.Promote(ctx, v)
	require.NoError(t, err)
	assert.False(t, added)

	book := f.store.Textbook()
	require.Len(t, book, 1)
	assert.Equal(t, fixedNow.UnixMilli(), book[0].AddedAt)
}

func TestSelection(t *testing.T) {
	f := newFixture(t)
	v := &domain.VocabItem{Word: "fog"}
	g := &domain.GrammarPoint{Sentence: "S."}

	f.ws.SelectVocab(v)
	assert.Same(t, v, f.ws.Snapshot().SelectedVocab)

	f.ws.SelectGrammar(g)
	snap := f.ws.Snapshot()
	assert.Nil(t, snap.SelectedVocab)
	assert.Same(t, g, snap.SelectedGrammar)

	f.ws.ClearSelection()
	assert.Nil(t, f.ws.Snapshot().SelectedGrammar)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ws.ExportText()
	assert.ErrorIs(t, err, ErrNoResult)

	f.mock.SetResponse("storyteller", `{"title":"The  Fog\tof London","content":"Line one.\nLine two."}`)
	require.NoError(t, f.ws.SetPrompt("x"))
	_, err = f.ws.Generate(ctx)
	require.NoError(t, err)

	text, err := f.ws.ExportText()
	require.NoError(t, err)
	assert.Equal(t, "The  Fog\tof London\n\nLine one.\nLine two.", text)

	name, err := f.ws.ExportFileName()
	require.NoError(t, err)
	assert.Equal(t, "The_Fog_of_London.txt", name)

	saved, err := f.ws.SaveExport(ctx)
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(f.exports.BaseDir(), saved))
	require.NoError(t, err)
	assert.Equal(t, text, string(raw))
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fog", "Fog.txt"},
		{"A  Tale\nof Two", "A_Tale_of_Two.txt"},
		{"雾中的 伦敦", "雾中的_伦敦.txt"},
		{"Nebel\u00a0über Soho", "Nebel_über_Soho.txt"},
		{"", ".txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportFileName(tt.title), "%q", tt.title)
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, UnknownMalaise, Message(errors.New(" ")))
	assert.Equal(t, "boom", Message(quillerrors.NewOperationError("generate story", errors.New("boom"))))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}

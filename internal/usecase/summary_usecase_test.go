package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	embedding    []float32
	embeddingErr error
	content      string
	contentErr   error

	lastPrompt string
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return f.embedding, f.embeddingErr
}

func (f *fakeGemini) GenerateContent(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.lastPrompt = prompt
	return f.content, f.contentErr
}

func TestSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><style>body{color:red}</style></head>
<body><h1>Release Notes</h1><p>Version 2.0 adds exports.</p>
<script>console.log("ignored")</script></body></html>`))
	}))
	defer server.Close()

	gemini := &fakeGemini{content: "Version 2.0 introduces export support."}
	uc := NewSummaryUsecase(gemini)

	summary, err := uc.Summarize(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Version 2.0 introduces export support.", summary)

	assert.Contains(t, gemini.lastPrompt, "Release Notes")
	assert.Contains(t, gemini.lastPrompt, "Version 2.0 adds exports.")
	assert.NotContains(t, gemini.lastPrompt, "console.log")
	assert.NotContains(t, gemini.lastPrompt, "color:red")
}

func TestSummarizeEmptyURL(t *testing.T) {
	uc := NewSummaryUsecase(&fakeGemini{})
	_, err := uc.Summarize(context.Background(), "  ")
	assert.Error(t, err)
}

func TestSummarizeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	uc := NewSummaryUsecase(&fakeGemini{})
	_, err := uc.Summarize(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSummarizeModelFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>some text</p>"))
	}))
	defer server.Close()

	uc := NewSummaryUsecase(&fakeGemini{contentErr: errors.New("quota exceeded")})
	_, err := uc.Summarize(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to summarize website")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tags removed and whitespace collapsed",
			in:   "<div>\n  <p>Hello</p>\n  <p>world</p>\n</div>",
			want: "Hello world",
		},
		{
			name: "script and style subtrees dropped",
			in:   "<style>p{}</style><p>kept</p><script>var x = 1;</script>",
			want: "kept",
		},
		{
			name: "plain text passes through",
			in:   "just text",
			want: "just text",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

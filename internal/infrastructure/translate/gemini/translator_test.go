package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"google.golang.org/genai"

	"drugcheck/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("Drug A may decrease the excretion rate of Drug B", language.English, language.French)
	assert.Contains(t, p, "from English to French")
	assert.True(t, strings.HasSuffix(p, "Drug A may decrease the excretion rate of Drug B"))
}

func TestDescribeErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want string
	}{
		{name: "quota", in: genai.APIError{Code: 429}, want: "gemini: quota exceeded"},
		{name: "unauthorized", in: genai.APIError{Code: 403}, want: "gemini: unauthorized"},
		{name: "other", in: errors.New("dial tcp: timeout"), want: "gemini: dial tcp: timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describeErr(tt.in).Error(), tt.want)
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
}

func TestTranslateEmptyText(t *testing.T) {
	tr := &Translator{model: DefaultModel}
	_, err := tr.Translate(context.Background(), "  ", language.English, language.French)
	assert.ErrorIs(t, err, domain.ErrTranslation)
}

func TestTranslateAgainstFakeServer(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":" Le médicament A peut diminuer le taux d'excrétion du médicament B \n"}]}}]}`))
	}))
	defer srv.Close()

	tr, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "Drug A may decrease the excretion rate of Drug B", language.English, language.French)
	require.NoError(t, err)
	assert.Equal(t, "Le médicament A peut diminuer le taux d'excrétion du médicament B", got)
	assert.Contains(t, body, "Drug A may decrease the excretion rate of Drug B")
}

func TestTranslateAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	tr, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "text", language.English, language.French)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTranslation)
	assert.Equal(t, domain.KindTranslation, domain.KindOf(err))
}

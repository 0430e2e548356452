package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drugcheck/internal/config"
	"drugcheck/internal/domain"
	"drugcheck/internal/domain/entities"
)

func fakeRxNav(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/rxcui.json"):
			switch r.URL.Query().Get("name") {
			case "warfarin":
				_, _ = w.Write([]byte(`{"idGroup":{"rxnormId":["111202"]}}`))
			case "aspirin":
				_, _ = w.Write([]byte(`{"idGroup":{"rxnormId":["207106"]}}`))
			default:
				_, _ = w.Write([]byte(`{"idGroup":{}}`))
			}
		case strings.HasSuffix(r.URL.Path, "/interaction/list.json"):
			if r.URL.RawQuery != "rxcuis=111202+207106" {
				_, _ = w.Write([]byte(`{}`))
				return
			}
			_, _ = w.Write([]byte(`{"fullInteractionTypeGroup":[{"fullInteractionType":[{"interactionPair":[{"description":"Drug A may decrease the excretion rate of Drug B"}]}]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPipelineEndToEnd(t *testing.T) {
	srv := fakeRxNav(t)
	cfg, err := config.FromLookup(func(key string) (string, bool) {
		if key == "RXNAV_BASE_URL" {
			return srv.URL + "/REST", true
		}
		return "", false
	})
	require.NoError(t, err)

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	got := a.Interactions.FindInteractions(context.Background(), []string{"warfarin", "aspirin"})
	assert.Equal(t, entities.StatusSuccess, got.Status)
	assert.Equal(t, "Drug A may decrease the excretion rate of Drug B", got.Text)

	got = a.Interactions.FindInteractions(context.Background(), []string{"warfarin", "asprin"})
	assert.Equal(t, domain.KindNotRecognized, got.Kind)
	assert.Equal(t, "asprin non reconnu, vérifiez votre orthographe", got.Text)

	got = a.Interactions.FindInteractions(context.Background(), []string{"aspirin"})
	assert.Equal(t, entities.StatusWarning, got.Status)
}

func TestNewRejectsUnknownTranslator(t *testing.T) {
	_, err := New(context.Background(), &config.Config{RxNavBaseURL: "http://x", Translator: "deepl"}, nil)
	assert.Error(t, err)
}

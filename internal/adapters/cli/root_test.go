package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drugcheck/internal/domain"
	"drugcheck/internal/domain/entities"
)

type recordingUseCase struct {
	payload entities.ResultPayload
	names   []string
}

func (r *recordingUseCase) FindInteractions(_ context.Context, names []string) entities.ResultPayload {
	r.names = names
	return r.payload
}

func run(t *testing.T, uc *recordingUseCase, args ...string) (string, error) {
	t.Helper()
	root := New(uc, "v1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckPrintsPayload(t *testing.T) {
	uc := &recordingUseCase{payload: entities.ResultPayload{Text: "Aucune interaction", Status: entities.StatusWarning}}

	out, err := run(t, uc, "check", "warfarin", "aspirin")

	require.NoError(t, err)
	assert.Equal(t, []string{"warfarin", "aspirin"}, uc.names)
	assert.Contains(t, out, "Aucune interaction")
}

func TestCheckErrorStatusFails(t *testing.T) {
	uc := &recordingUseCase{payload: entities.ResultPayload{
		Text:   "asprin non reconnu",
		Status: entities.StatusError,
		Kind:   domain.KindNotRecognized,
	}}

	out, err := run(t, uc, "check", "asprin")

	require.ErrorIs(t, err, ErrLookupFailed)
	assert.Contains(t, err.Error(), "not_recognized")
	assert.Contains(t, out, "asprin non reconnu")
}

func TestCheckShowsOriginals(t *testing.T) {
	uc := &recordingUseCase{payload: entities.ResultPayload{
		Text:   "FR 1\nFR 2",
		Status: entities.StatusSuccess,
		Lines: []entities.Line{
			{Original: "EN 1", Text: "FR 1"},
			{Original: "EN 2", Text: "FR 2"},
		},
	}}

	out, err := run(t, uc, "check", "--original", "a", "b")

	require.NoError(t, err)
	assert.Contains(t, out, "EN 1")
	assert.Contains(t, out, "FR 2")
}

func TestVersion(t *testing.T) {
	out, err := run(t, &recordingUseCase{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

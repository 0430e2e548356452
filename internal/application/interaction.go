package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"

	"drugcheck/internal/domain"
	"drugcheck/internal/domain/entities"
	"drugcheck/internal/infrastructure/logging"
	"drugcheck/internal/ports/input"
	"drugcheck/internal/ports/output"
)

// AmbiguityPolicy decides what happens when a name resolves to several
// identifiers.
type AmbiguityPolicy string

const (
	// AmbiguityFirst keeps the first identifier returned by the registry.
	AmbiguityFirst AmbiguityPolicy = "first"
	// AmbiguityReject fails the lookup and asks for a more specific name.
	AmbiguityReject AmbiguityPolicy = "reject"
)

// ParseAmbiguityPolicy accepts "first", "reject" or "" (first).
func ParseAmbiguityPolicy(s string) (AmbiguityPolicy, error) {
	switch p := AmbiguityPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", AmbiguityFirst:
		return AmbiguityFirst, nil
	case AmbiguityReject:
		return p, nil
	default:
		return "", fmt.Errorf("politique d'ambiguïté inconnue %q (attendu first ou reject)", s)
	}
}

type Options struct {
	Locale    string
	Source    language.Tag
	Dest      language.Tag
	Ambiguity AmbiguityPolicy
}

var _ input.InteractionUseCase = (*InteractionService)(nil)

// InteractionService runs the resolve → lookup → translate pipeline. Only one
// pipeline runs at a time; later callers wait their turn.
type InteractionService struct {
	resolver   output.IdentifierResolver
	lookup     output.InteractionLookup
	translator output.TextTranslator
	messages   output.T
	log        *logging.Logger
	opts       Options
	inFlight   *semaphore.Weighted
}

func NewInteractionService(
	resolver output.IdentifierResolver,
	lookup output.InteractionLookup,
	translator output.TextTranslator,
	messages output.T,
	log *logging.Logger,
	opts Options,
) *InteractionService {
	if opts.Source == language.Und {
		opts.Source = language.English
	}
	if opts.Dest == language.Und {
		opts.Dest = language.French
	}
	if opts.Ambiguity == "" {
		opts.Ambiguity = AmbiguityFirst
	}
	return &InteractionService{
		resolver:   resolver,
		lookup:     lookup,
		translator: translator,
		messages:   messages,
		log:        log,
		opts:       opts,
		inFlight:   semaphore.NewWeighted(1),
	}
}

func (s *InteractionService) FindInteractions(ctx context.Context, names []string) entities.ResultPayload {
	if err := s.inFlight.Acquire(ctx, 1); err != nil {
		return s.fail(domain.NewError(domain.KindBusy, "", err))
	}
	defer s.inFlight.Release(1)

	drugs := collectNames(names)
	log := s.log.WithFields(map[string]any{"drugs": len(drugs)})
	if len(drugs) == 0 {
		log.Debug("aucun médicament saisi")
		return s.noInteractions()
	}

	log.Debug("résolution des noms")
	ids, err := s.resolveAll(ctx, drugs)
	if err != nil {
		log.Error(err, "résolution échouée")
		return s.fail(err)
	}

	log.Debug("recherche des interactions")
	found, err := s.lookup.FindInteractions(ctx, ids)
	if err != nil {
		log.Error(err, "recherche des interactions échouée")
		return s.fail(err)
	}
	if len(found) == 0 {
		return s.noInteractions()
	}

	log.WithFields(map[string]any{"interactions": len(found)}).Debug("traduction")
	lines := s.translateAll(ctx, found)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return entities.ResultPayload{
		Text:   strings.Join(texts, "\n"),
		Status: entities.StatusSuccess,
		Kind:   domain.KindNone,
		Lines:  lines,
	}
}

func collectNames(names []string) []entities.DrugName {
	out := make([]entities.DrugName, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, entities.DrugName(n))
		}
	}
	return out
}

// resolveAll resolves names left to right and stops at the first failure.
func (s *InteractionService) resolveAll(ctx context.Context, names []entities.DrugName) ([]entities.DrugIdentifier, error) {
	ids := make([]entities.DrugIdentifier, 0, len(names))
	for _, name := range names {
		got, err := s.resolver.ResolveName(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(got) == 0 {
			return nil, domain.NewError(domain.KindNotRecognized, string(name), nil)
		}
		if len(got) > 1 {
			if s.opts.Ambiguity == AmbiguityReject {
				return nil, domain.NewError(domain.KindAmbiguous, string(name), ambiguousError{candidates: len(got)})
			}
			s.log.WithFields(map[string]any{"drug": string(name), "candidates": len(got), "kept": string(got[0])}).
				Warn("plusieurs identifiants, le premier est retenu")
		}
		ids = append(ids, got[0])
	}
	return ids, nil
}

// translateAll translates each description on its own. A failure only
// affects its own line.
func (s *InteractionService) translateAll(ctx context.Context, found []entities.Interaction) []entities.Line {
	lines := make([]entities.Line, 0, len(found))
	for _, it := range found {
		text, err := s.translator.Translate(ctx, it.Description, s.opts.Source, s.opts.Dest)
		if err != nil {
			s.log.Error(err, "traduction échouée")
			text = s.messages.T(s.opts.Locale, "translation_error", map[string]any{"Error": domain.Cause(err)})
		}
		lines = append(lines, entities.Line{Original: it.Description, Text: text, Err: err})
	}
	return lines
}

func (s *InteractionService) noInteractions() entities.ResultPayload {
	return entities.ResultPayload{
		Text:   s.messages.T(s.opts.Locale, "no_interactions", nil),
		Status: entities.StatusWarning,
		Kind:   domain.KindNoInteractions,
	}
}

func (s *InteractionService) fail(err error) entities.ResultPayload {
	kind := domain.KindOf(err)
	if kind == domain.KindNone {
		kind = domain.KindTransport
	}

	var text string
	switch kind {
	case domain.KindNotRecognized:
		text = s.messages.T(s.opts.Locale, "not_recognized", map[string]any{"Drug": drugOf(err)})
	case domain.KindAmbiguous:
		text = s.messages.T(s.opts.Locale, "ambiguous", map[string]any{"Drug": drugOf(err), "Count": candidatesOf(err)})
	case domain.KindBusy:
		text = s.messages.T(s.opts.Locale, "busy", nil)
	default:
		text = s.messages.T(s.opts.Locale, "transport_error", map[string]any{"Error": domain.Cause(err)})
	}
	return entities.ResultPayload{Text: text, Status: entities.StatusError, Kind: kind}
}

func drugOf(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Drug
	}
	return ""
}

type ambiguousError struct {
	candidates int
}

func (e ambiguousError) Error() string {
	return fmt.Sprintf("%d identifiants candidats", e.candidates)
}

func candidatesOf(err error) int {
	var ae ambiguousError
	if errors.As(err, &ae) {
		return ae.candidates
	}
	return 0
}

package entities

import "drugcheck/internal/domain"

// Status drives how a shell presents a ResultPayload.
type Status int

const (
	StatusError   Status = iota // rouge
	StatusWarning               // vert : aucune interaction
	StatusSuccess               // bleu : interactions listées
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Line is one rendered interaction. Err is set when the translation failed,
// in which case Text holds the localized placeholder.
type Line struct {
	Original string
	Text     string
	Err      error
}

// ResultPayload is the sole output of one "find interactions" invocation.
type ResultPayload struct {
	Text   string
	Status Status
	Kind   domain.Kind
	Lines  []Line
}

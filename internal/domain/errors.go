package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline outcome so callers can branch on it without
// parsing display strings.
type Kind string

const (
	KindNone           Kind = ""
	KindTransport      Kind = "transport"
	KindNotRecognized  Kind = "not_recognized"
	KindAmbiguous      Kind = "ambiguous"
	KindNoInteractions Kind = "no_interactions"
	KindTranslation    Kind = "translation"
	KindBusy           Kind = "busy"
)

// Domain errors.
var (
	ErrTransport     = errors.New("erreur de transport")
	ErrNotRecognized = errors.New("médicament non reconnu")
	ErrAmbiguous     = errors.New("médicament ambigu")
	ErrTranslation   = errors.New("erreur de traduction")
	ErrBusy          = errors.New("une recherche est déjà en cours")
)

var sentinels = map[Kind]error{
	KindTransport:     ErrTransport,
	KindNotRecognized: ErrNotRecognized,
	KindAmbiguous:     ErrAmbiguous,
	KindTranslation:   ErrTranslation,
	KindBusy:          ErrBusy,
}

// Error carries a Kind next to the underlying cause. Drug is set when the
// failure is tied to one input name.
type Error struct {
	Kind Kind
	Drug string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "domain error"
	}
	msg := string(e.Kind)
	if s, ok := sentinels[e.Kind]; ok {
		msg = s.Error()
	}
	if e.Drug != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Drug)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrNotRecognized) hold for any *Error of that kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// NewError wraps cause with kind.
func NewError(kind Kind, drug string, cause error) *Error {
	return &Error{Kind: kind, Drug: drug, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindNone.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindNone
}

// Cause returns the message of the wrapped error, without the kind prefix.
func Cause(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Err != nil {
		return de.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

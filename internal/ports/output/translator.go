package output

import (
	"context"

	"golang.org/x/text/language"
)

// TextTranslator translates free text between two languages.
type TextTranslator interface {
	Translate(ctx context.Context, text string, source, dest language.Tag) (string, error)
}

package item

import (
	"errors"
	"strings"
	"unicode/utf8"

	"adventure/internal/pkg/errs"
	"adventure/internal/pkg/guard"
)

// MaxTextLength is the longest label, in runes, an item may carry.
const MaxTextLength = 500

var (
	ErrTextIsNotConstructed = errors.New("Text must be created via NewText constructor")

	// ErrTextIsRequired is returned for empty or whitespace-only labels.
	ErrTextIsRequired = errs.NewValueIsRequiredError("text")
)

// Text is the label of an item. It is stored trimmed.
type Text struct {
	value string
	guard guard.ConstructorGuard
}

// NewText trims raw and validates it.
func NewText(raw string) (Text, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Text{}, ErrTextIsRequired
	}

	if n := utf8.RuneCountInString(value); n > MaxTextLength {
		return Text{}, errs.NewValueIsOutOfRangeError("text length", n, 1, MaxTextLength)
	}

	return Text{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewText is NewText for literals known to be valid; it panics otherwise.
func MustNewText(raw string) Text {
	text, err := NewText(raw)
	if err != nil {
		panic(err)
	}
	return text
}

func (t Text) Validate() error {
	return t.guard.Validate(ErrTextIsNotConstructed)
}

func (t Text) String() string {
	return t.value
}

func (t Text) IsEqual(other Text) bool {
	return t.value == other.value
}

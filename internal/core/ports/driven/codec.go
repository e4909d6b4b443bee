package driven

import (
	"io"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

// SaveCodec converts between raw save bytes and SaveDocument.
// Implementations own the binary format entirely.
type SaveCodec interface {
	// Decode parses raw save bytes.
	// Returns an error wrapping domain.ErrDecode if the bytes are not a save.
	Decode(data []byte) (*domain.SaveDocument, error)

	// Encode serialises a document to raw save bytes.
	// Returns an error wrapping domain.ErrEncode on failure.
	Encode(doc *domain.SaveDocument) ([]byte, error)

	// Name identifies the format in logs.
	Name() string
}

// TextCodec converts between SaveDocument and its editable text form.
type TextCodec interface {
	// ToText writes the pretty-printed text representation of doc to w.
	ToText(w io.Writer, doc *domain.SaveDocument) error

	// FromText parses a text representation.
	// Returns a *domain.TextError (wrapping domain.ErrMalformedText) when
	// the text does not describe a document.
	FromText(r io.Reader) (*domain.SaveDocument, error)

	// Extension is the file suffix editors recognise, e.g. ".json".
	Extension() string
}

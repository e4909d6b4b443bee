package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/core/ports/driving"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.ConvertService = (*ConvertService)(nil)

// ConvertService converts saves between binary and text through streams.
type ConvertService struct {
	codec   driven.SaveCodec
	text    driven.TextCodec
	streams driven.StreamResolver
}

// NewConvertService creates a new convert service.
func NewConvertService(codec driven.SaveCodec, text driven.TextCodec, streams driven.StreamResolver) *ConvertService {
	return &ConvertService{
		codec:   codec,
		text:    text,
		streams: streams,
	}
}

// ToText decodes the save read from input and writes its text form to
// output. The output is only opened once decoding has succeeded.
func (s *ConvertService) ToText(_ context.Context, input, output string) error {
	logger.Section("to-json")

	raw, err := readAll(s.streams, input)
	if err != nil {
		return err
	}
	logger.Bytes(describe(input), raw)

	doc, err := s.codec.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode %s: %w", describe(input), err)
	}

	out, err := s.streams.OpenWriter(output)
	if err != nil {
		return err
	}
	if err := s.text.ToText(out, doc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// FromText parses the text read from input and writes the encoded save to
// output. The output is only opened once encoding has succeeded.
func (s *ConvertService) FromText(_ context.Context, input, output string) error {
	logger.Section("from-json")

	in, err := s.streams.OpenReader(input)
	if err != nil {
		return err
	}
	doc, err := s.text.FromText(in)
	closeErr := in.Close()
	if err != nil {
		return fmt.Errorf("parse %s: %w", describe(input), err)
	}
	if closeErr != nil {
		return closeErr
	}

	encoded, err := s.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", describe(input), err)
	}
	logger.Debug("encoded %d bytes with %s", len(encoded), s.codec.Name())

	out, err := s.streams.OpenWriter(output)
	if err != nil {
		return err
	}
	if _, err := out.Write(encoded); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, describe(output), err)
	}
	return out.Close()
}

// readAll reads a whole stream and closes it.
func readAll(streams driven.StreamResolver, token string) ([]byte, error) {
	in, err := streams.OpenReader(token)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(in)
	closeErr := in.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIO, describe(token), err)
	}
	if closeErr != nil {
		return nil, closeErr
	}
	return data, nil
}

// describe names a path token for messages.
func describe(token string) string {
	if token == driven.StdStream {
		return "standard stream"
	}
	return token
}

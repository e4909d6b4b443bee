package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/core/ports/driving"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure ResaveService implements the interface.
var _ driving.ResaveService = (*ResaveService)(nil)

// ResaveService verifies that the codec reproduces a save byte for byte.
type ResaveService struct {
	codec   driven.SaveCodec
	files   driven.FileStore
	dumpDir string
}

// NewResaveService creates a resave service. Debug dumps are written to
// dumpDir; "." is the working directory.
func NewResaveService(codec driven.SaveCodec, files driven.FileStore, dumpDir string) *ResaveService {
	if dumpDir == "" {
		dumpDir = "."
	}
	return &ResaveService{
		codec:   codec,
		files:   files,
		dumpDir: dumpDir,
	}
}

// Test decodes and re-encodes the save at path and compares the bytes.
func (s *ResaveService) Test(_ context.Context, path string, debug bool) (*domain.ResaveReport, error) {
	logger.Section("test-resave")

	original, err := s.files.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := s.codec.Decode(original)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	encoded, err := s.codec.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}

	report := &domain.ResaveReport{
		Path:       path,
		InputSize:  len(original),
		OutputSize: len(encoded),
		Match:      bytes.Equal(original, encoded),
		FirstDiff:  -1,
	}
	if report.Match {
		logger.Info("resave of %s matched (%d bytes)", path, len(original))
		return report, nil
	}

	report.FirstDiff = domain.FirstDifference(original, encoded)
	logger.Info("resave of %s differs at offset %d", path, report.FirstDiff)

	if debug {
		s.dump(report, original, encoded)
	}

	return report, fmt.Errorf("%w: %s: read %d bytes, wrote %d bytes, first difference at offset %d",
		domain.ErrResaveMismatch, path, report.InputSize, report.OutputSize, report.FirstDiff)
}

// dump writes both byte streams for offline diffing. Failures are logged,
// not returned: the mismatch is the result that matters.
func (s *ResaveService) dump(report *domain.ResaveReport, original, encoded []byte) {
	inPath := s.files.Join(s.dumpDir, domain.ResaveInputDump)
	if err := s.files.WriteFile(inPath, original); err != nil {
		logger.Warn("could not write %s: %v", inPath, err)
	} else {
		report.InputDump = inPath
	}

	outPath := s.files.Join(s.dumpDir, domain.ResaveOutputDump)
	if err := s.files.WriteFile(outPath, encoded); err != nil {
		logger.Warn("could not write %s: %v", outPath, err)
	} else {
		report.OutputDump = outPath
	}
}

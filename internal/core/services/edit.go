package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/core/ports/driving"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure EditService implements the interface.
var _ driving.EditService = (*EditService)(nil)

// tempPattern names the staged text file; the extension comes from the
// text codec so editors pick the right syntax.
const tempPattern = "savekit-*"

// EditService runs in-place edit sessions.
type EditService struct {
	codec    driven.SaveCodec
	text     driven.TextCodec
	files    driven.FileStore
	launcher driven.EditorLauncher
}

// NewEditService creates a new edit service.
func NewEditService(
	codec driven.SaveCodec,
	text driven.TextCodec,
	files driven.FileStore,
	launcher driven.EditorLauncher,
) *EditService {
	return &EditService{
		codec:    codec,
		text:     text,
		files:    files,
		launcher: launcher,
	}
}

// Edit stages the save at path as text, runs the editor on it and writes
// the save back only if the re-encoded bytes differ. The target is never
// written before the edited text has been parsed and encoded.
func (s *EditService) Edit(ctx context.Context, path string, editor domain.EditorCommand) (*domain.EditorSession, error) {
	session := &domain.EditorSession{
		ID:         uuid.NewString(),
		TargetPath: path,
		Editor:     editor,
	}
	logger.Section("edit " + session.ID)

	// Tokenise first so a bad command fails before anything is written.
	inv, err := s.launcher.Prepare(editor)
	if err != nil {
		return nil, err
	}
	session.Invocation = inv
	logger.Debug("editor %q from %s", editor.Command, editor.Source)

	original, err := s.files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	session.Original = original
	logger.Bytes(path, original)

	doc, err := s.codec.Decode(original)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var text bytes.Buffer
	if err := s.text.ToText(&text, doc); err != nil {
		return nil, err
	}

	tempPath, err := s.files.CreateTemp(tempPattern+s.text.Extension(), text.Bytes())
	if err != nil {
		return nil, err
	}
	session.TempPath = tempPath
	defer func() {
		if err := s.files.Remove(tempPath); err != nil {
			logger.Warn("could not remove %s: %v", tempPath, err)
		}
	}()
	logger.Debug("staged %d bytes of text at %s", text.Len(), tempPath)

	code, err := s.launcher.Run(ctx, inv, tempPath)
	if err != nil {
		return nil, err
	}
	session.ExitCode = code
	if code != 0 {
		// A non-zero exit (e.g. :cq in vim) still proceeds; the comparison
		// below decides whether anything is written.
		logger.Warn("editor exited with status %d; checking for changes anyway", code)
	}

	edited, err := s.files.ReadFile(tempPath)
	if err != nil {
		return nil, err
	}
	newDoc, err := s.text.FromText(bytes.NewReader(edited))
	if err != nil {
		return nil, fmt.Errorf("parse edited %s: %w", path, err)
	}
	encoded, err := s.codec.Encode(newDoc)
	if err != nil {
		return nil, fmt.Errorf("encode edited %s: %w", path, err)
	}

	if bytes.Equal(encoded, original) {
		session.Outcome = domain.EditUnchanged
		logger.Info("%s unchanged", path)
		return session, nil
	}

	if err := s.files.WriteFile(path, encoded); err != nil {
		return nil, err
	}
	session.Outcome = domain.EditModified
	logger.Info("%s rewritten: %d bytes", path, len(encoded))
	return session, nil
}

package proofstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"campusbook/pkg/logger"
	"campusbook/pkg/model"

	"github.com/google/uuid"
)

// Upload is a single proof document received from a client.
type Upload struct {
	Name    string
	Content io.Reader
}

// Store persists proof documents and hands back opaque locators. Writes
// are staged: the caller commits by persisting the returned locators, or
// calls Discard to roll the staged files back when the database update
// fails.
type Store interface {
	Stage(ctx context.Context, eventID string, uploads []Upload) ([]model.Proof, error)
	Discard(proofs []model.Proof)
}

type diskStore struct {
	baseDir string
	log     *logger.Logger
}

func NewDiskStore(baseDir string, log *logger.Logger) (Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create proof storage directory: %w", err)
	}
	return &diskStore{baseDir: baseDir, log: log}, nil
}

func (s *diskStore) Stage(ctx context.Context, eventID string, uploads []Upload) ([]model.Proof, error) {
	eventDir := filepath.Join(s.baseDir, eventID)
	if err := os.MkdirAll(eventDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event proof directory: %w", err)
	}

	staged := make([]model.Proof, 0, len(uploads))
	for _, upload := range uploads {
		if err := ctx.Err(); err != nil {
			s.Discard(staged)
			return nil, err
		}

		locator := filepath.Join(eventID, uuid.NewString()+filepath.Ext(upload.Name))
		if err := s.writeFile(filepath.Join(s.baseDir, locator), upload.Content); err != nil {
			s.Discard(staged)
			return nil, fmt.Errorf("failed to store proof %q: %w", upload.Name, err)
		}

		staged = append(staged, model.Proof{
			Name:       filepath.Base(upload.Name),
			Locator:    locator,
			UploadedAt: time.Now().UTC().Truncate(time.Millisecond),
		})
	}

	return staged, nil
}

func (s *diskStore) writeFile(path string, content io.Reader) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}

	return file.Close()
}

// Discard removes staged files. Failures are logged and swallowed, a
// leaked file on disk is harmless next to a failed request.
func (s *diskStore) Discard(proofs []model.Proof) {
	for _, proof := range proofs {
		path := filepath.Join(s.baseDir, proof.Locator)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("Failed to remove staged proof file", "path", path, "error", err)
		}
	}
}

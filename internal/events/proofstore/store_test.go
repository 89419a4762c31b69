package proofstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"campusbook/pkg/logger"
)

func testStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	log := logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	})
	store, err := NewDiskStore(dir, log)
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	return store, dir
}

func TestStageWritesFiles(t *testing.T) {
	store, dir := testStore(t)

	staged, err := store.Stage(context.Background(), "event-1", []Upload{
		{Name: "report.pdf", Content: strings.NewReader("final report")},
		{Name: "photos.zip", Content: strings.NewReader("archive")},
	})
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	if len(staged) != 2 {
		t.Fatalf("staged %d proofs, want 2", len(staged))
	}

	for i, proof := range staged {
		if proof.UploadedAt.IsZero() {
			t.Errorf("proof %d has zero upload time", i)
		}
		content, err := os.ReadFile(filepath.Join(dir, proof.Locator))
		if err != nil {
			t.Fatalf("stored file missing for %s: %v", proof.Name, err)
		}
		if len(content) == 0 {
			t.Errorf("stored file for %s is empty", proof.Name)
		}
	}

	if staged[0].Name != "report.pdf" {
		t.Errorf("proof name = %q, want original filename", staged[0].Name)
	}
	if filepath.Ext(staged[0].Locator) != ".pdf" {
		t.Errorf("locator %q should keep the original extension", staged[0].Locator)
	}
	if staged[0].Locator == staged[1].Locator {
		t.Error("locators must be unique")
	}
}

func TestStageSanitizesClientPaths(t *testing.T) {
	store, dir := testStore(t)

	staged, err := store.Stage(context.Background(), "event-1", []Upload{
		{Name: "../../etc/passwd", Content: strings.NewReader("nope")},
	})
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	if staged[0].Name != "passwd" {
		t.Errorf("proof name = %q, want base name only", staged[0].Name)
	}
	rel, err := filepath.Rel(dir, filepath.Join(dir, staged[0].Locator))
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("locator %q escapes the storage directory", staged[0].Locator)
	}
}

func TestDiscardRemovesStagedFiles(t *testing.T) {
	store, dir := testStore(t)

	staged, err := store.Stage(context.Background(), "event-1", []Upload{
		{Name: "report.pdf", Content: strings.NewReader("final report")},
	})
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	store.Discard(staged)

	if _, err := os.Stat(filepath.Join(dir, staged[0].Locator)); !os.IsNotExist(err) {
		t.Error("discarded proof file should be removed")
	}

	// Discarding twice must not panic or error loudly.
	store.Discard(staged)
}

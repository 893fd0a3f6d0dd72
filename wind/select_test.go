package wind

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSelectDatasetNearestTimeLowestIDTieBreak(t *testing.T) {
	root := t.TempDir()
	names := []string{
		"gfs_4_20260101_0000_000", // valid 2026-01-01 00:00, id 0
		"gfs_4_20260101_0000_012", // valid 2026-01-01 12:00, id 1
		"gfs_4_20260101_1200_000", // valid 2026-01-01 12:00, id 2 (ties with id 1)
	}
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(root, n), 0755); err != nil {
			t.Fatal(err)
		}
	}

	cat := NewCatalog(root, 0, nil)
	if err := cat.ensureLoaded(); err != nil {
		t.Fatalf("ensureLoaded: %v", err)
	}

	noon := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ds, err := cat.selectDataset(noon)
	if err != nil {
		t.Fatalf("selectDataset: %v", err)
	}
	if ds.ID != 1 {
		t.Errorf("tied datasets should resolve to the lowest id: got %d, want 1", ds.ID)
	}
}

func TestListDatasetsInsertionOrder(t *testing.T) {
	root := t.TempDir()
	names := []string{"gfs_4_20260101_0000_000", "gfs_4_20260101_0600_000", "not_a_dataset"}
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(root, n), 0755); err != nil {
			t.Fatal(err)
		}
	}

	cat := NewCatalog(root, 0, nil)
	got, err := cat.ListDatasets()
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	want := []string{"gfs_4_20260101_0000_000", "gfs_4_20260101_0600_000"}
	if len(got) != len(want) {
		t.Fatalf("ListDatasets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListDatasets[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNoConformingDatasetsIsError(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "nonsense"), 0755); err != nil {
		t.Fatal(err)
	}
	cat := NewCatalog(root, 0, nil)
	if _, err := cat.ListDatasets(); err == nil {
		t.Errorf("expected NoDatasets error for a root with no conforming subdirectories")
	}
}

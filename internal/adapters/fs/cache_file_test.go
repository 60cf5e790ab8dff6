package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheFileRepository_LoadMissing(t *testing.T) {
	repo := NewCacheFileRepository(t.TempDir())

	entries, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load = %v, want empty", entries)
	}
}

func TestCacheFileRepository_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	repo := NewCacheFileRepository(dir)
	ctx := context.Background()

	want := map[string][]string{
		"en.wikipedia.org|Montreal|de,fr": {
			"https://de.wikipedia.org/wiki/Montreal",
			"https://fr.wikipedia.org/wiki/Montr%C3%A9al",
		},
		"ru.wikipedia.org|Россия|en": {},
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if _, err := os.Stat(repo.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load = %v, want %v", got, want)
	}
	for k, v := range want {
		if len(got[k]) != len(v) {
			t.Errorf("entry %q = %v, want %v", k, got[k], v)
			continue
		}
		for i := range v {
			if got[k][i] != v[i] {
				t.Errorf("entry %q[%d] = %q, want %q", k, i, got[k][i], v[i])
			}
		}
	}
}

func TestCacheFileRepository_Corrupt(t *testing.T) {
	dir := t.TempDir()
	repo := NewCacheFileRepository(dir)
	if err := os.WriteFile(repo.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("Load error = nil, want decode error")
	}
}

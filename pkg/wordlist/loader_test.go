package wordlist

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# header comment\nhunter2\n\n  spaced  \nCompany123\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Should not fail writing fixture: %s", err)
	}

	words, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile should not fail: %s", err)
	}

	want := []string{"hunter2", "spaced", "Company123"}
	if len(words) != len(want) {
		t.Fatalf("loaded %d words, want: %d (%v)", len(words), len(want), words)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d: %q, want: %q", i, words[i], w)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/does/not/exist.txt"); err == nil {
		t.Errorf("LoadFile should fail for a missing file")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("alpha\nbeta\n# comment\ngamma\n"))
	}))
	defer srv.Close()

	words, err := Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch should not fail: %s", err)
	}
	if len(words) != 3 {
		t.Fatalf("fetched %d words, want: 3 (%v)", len(words), words)
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL); err == nil {
		t.Errorf("Fetch should fail on a 404 response")
	}
}

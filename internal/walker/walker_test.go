package walker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// buildTree creates a small project tree for walk tests
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"main.go":                "package main\n",
		"README.md":              "# readme\n",
		"internal/server.go":     "package internal\nfunc Serve() {}\n",
		"internal/server_big.go": string(make([]byte, 2048)),
		"node_modules/dep.js":    "module.exports = {}\n",
		".git/config":            "[core]\n",
		"secret/token.txt":       "hunter2\n",
	}

	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	return root
}

func collect(t *testing.T, root string, cfg Config) []string {
	t.Helper()

	var paths []string
	err := New().Walk(context.Background(), root, cfg, func(c FileCandidate) error {
		paths = append(paths, c.RelPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	sort.Strings(paths)
	return paths
}

func TestWalkSkipsDefaultExclusions(t *testing.T) {
	root := buildTree(t)

	paths := collect(t, root, Config{})

	for _, p := range paths {
		if strings.HasPrefix(p, "node_modules") || strings.HasPrefix(p, ".git") {
			t.Errorf("excluded path %q was visited", p)
		}
	}

	want := []string{"README.md", "internal/server.go", "internal/server_big.go", "main.go", "secret/token.txt"}
	if len(paths) != len(want) {
		t.Fatalf("visited %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("visited %v, want %v", paths, want)
			break
		}
	}
}

func TestWalkExcludeDirs(t *testing.T) {
	root := buildTree(t)

	paths := collect(t, root, Config{ExcludeDirs: []string{"internal"}})

	for _, p := range paths {
		if strings.HasPrefix(p, "internal") {
			t.Errorf("excluded path %q was visited", p)
		}
	}
}

func TestWalkFileTypes(t *testing.T) {
	root := buildTree(t)

	paths := collect(t, root, Config{FileTypes: []string{"go"}})

	want := []string{"internal/server.go", "internal/server_big.go", "main.go"}
	if len(paths) != len(want) {
		t.Fatalf("visited %v, want %v", paths, want)
	}
}

func TestWalkMaxFileSize(t *testing.T) {
	root := buildTree(t)

	paths := collect(t, root, Config{FileTypes: []string{"go"}, MaxFileSize: 1024})

	for _, p := range paths {
		if p == "internal/server_big.go" {
			t.Error("oversized file was visited")
		}
	}
}

func TestWalkSecurityCheck(t *testing.T) {
	root := buildTree(t)

	cfg := Config{
		Security: func(ctx context.Context, path string) (bool, error) {
			return filepath.Base(filepath.Dir(path)) != "secret", nil
		},
	}

	paths := collect(t, root, cfg)

	for _, p := range paths {
		if p == "secret/token.txt" {
			t.Error("vetoed path was visited")
		}
	}
}

func TestWalkLoadsContent(t *testing.T) {
	root := buildTree(t)

	seen := make(map[string]string)
	cfg := Config{FileTypes: []string{"go"}, LoadContent: true}
	err := New().Walk(context.Background(), root, cfg, func(c FileCandidate) error {
		seen[c.RelPath] = c.Content
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if seen["main.go"] != "package main\n" {
		t.Errorf("content for main.go = %q, want package clause", seen["main.go"])
	}
	if len(seen) != 3 {
		t.Errorf("loaded %d files, want 3", len(seen))
	}
}

func TestWalkCallbackError(t *testing.T) {
	root := buildTree(t)

	wantErr := errors.New("stop here")
	err := New().Walk(context.Background(), root, Config{}, func(c FileCandidate) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Walk returned %v, want %v", err, wantErr)
	}
}

func TestWalkCallbackErrorWithContent(t *testing.T) {
	root := buildTree(t)

	wantErr := errors.New("stop here")
	err := New().Walk(context.Background(), root, Config{LoadContent: true}, func(c FileCandidate) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Walk returned %v, want %v", err, wantErr)
	}
}

func TestWalkContextCancellation(t *testing.T) {
	root := buildTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Walk(ctx, root, Config{}, func(c FileCandidate) error {
		t.Error("callback invoked after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk returned %v, want context.Canceled", err)
	}
}

func TestWalkMetadata(t *testing.T) {
	root := buildTree(t)

	var got FileCandidate
	cfg := Config{FileTypes: []string{"md"}}
	err := New().Walk(context.Background(), root, cfg, func(c FileCandidate) error {
		got = c
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if got.RelPath != "README.md" {
		t.Fatalf("RelPath = %q, want README.md", got.RelPath)
	}
	if !filepath.IsAbs(got.Path) {
		t.Errorf("Path %q should be absolute", got.Path)
	}
	if got.Size != int64(len("# readme\n")) {
		t.Errorf("Size = %d, want %d", got.Size, len("# readme\n"))
	}
	if got.ModTime.IsZero() {
		t.Error("ModTime should be set")
	}
}

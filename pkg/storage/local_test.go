package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	t.Run("identical client filenames never collide", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewLocalStore: %v", err)
		}

		first, err := store.Save("dish.png", strings.NewReader("first upload"))
		if err != nil {
			t.Fatalf("first save: %v", err)
		}
		second, err := store.Save("dish.png", strings.NewReader("second upload"))
		if err != nil {
			t.Fatalf("second save: %v", err)
		}

		if first == second {
			t.Fatalf("two uploads of %q stored under the same name %q", "dish.png", first)
		}

		got, err := os.ReadFile(filepath.Join(store.Dir, first))
		if err != nil {
			t.Fatalf("read first file: %v", err)
		}
		if string(got) != "first upload" {
			t.Errorf("first file content = %q, want %q", got, "first upload")
		}
		got, err = os.ReadFile(filepath.Join(store.Dir, second))
		if err != nil {
			t.Fatalf("read second file: %v", err)
		}
		if string(got) != "second upload" {
			t.Errorf("second file content = %q, want %q", got, "second upload")
		}
	})

	t.Run("path components are stripped", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewLocalStore: %v", err)
		}

		name, err := store.Save("../../etc/passwd", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if strings.ContainsAny(name, "/\\") {
			t.Fatalf("stored name %q contains a path separator", name)
		}
		if _, err := os.Stat(filepath.Join(store.Dir, name)); err != nil {
			t.Fatalf("file not stored inside the upload dir: %v", err)
		}
	})
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"dish.png":         "dish.png",
		"../../evil.sh":    "evil.sh",
		"my photo (1).jpg": "my_photo__1_.jpg",
		"":                 "upload",
		"..":               "upload",
	}
	for in, want := range cases {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeSite lays out files (relative path -> content) under a temp site root.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWalk_SelectedDirsOnly(t *testing.T) {
	root := writeSite(t, map[string]string{
		"data/projects.json":       `{"projects":[]}`,
		"assets/alpha/1.png":       "png",
		"assets/alpha/2.webp":      "webp",
		"templates/project.html":   "<html></html>",
		"notes.txt":                "not published",
		"assets/.DS_Store":         "junk",
		"assets/node_modules/x.js": "dep",
	})

	files, err := Walk(Config{RootDir: root, Dirs: []string{"data", "assets"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"assets/alpha/1.png", "assets/alpha/2.webp", "data/projects.json"}
	if got := relPaths(files); !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_MissingDirIsSkipped(t *testing.T) {
	root := writeSite(t, map[string]string{"data/projects.json": "{}"})

	files, err := Walk(Config{RootDir: root, Dirs: []string{"data", "assets"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d", len(files))
	}
}

func TestWalk_FileFields(t *testing.T) {
	root := writeSite(t, map[string]string{"assets/a.png": "abc"})

	files, err := Walk(Config{RootDir: root, Dirs: []string{"assets"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	f := files[0]
	if f.Size != 3 {
		t.Errorf("Size = %d, want 3", f.Size)
	}
	if f.Kind != KindImage {
		t.Errorf("Kind = %q, want %q", f.Kind, KindImage)
	}
	// sha256("abc")
	const wantHash = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if f.ContentHash != wantHash {
		t.Errorf("ContentHash = %s, want %s", f.ContentHash, wantHash)
	}
	if !filepath.IsAbs(f.Path) {
		t.Errorf("Path %q is not absolute", f.Path)
	}
}

func TestWalk_IncludeExclude(t *testing.T) {
	root := writeSite(t, map[string]string{
		"assets/alpha/1.png":     "1",
		"assets/alpha/raw/1.psd": "psd",
		"assets/beta/1.jpg":      "1",
		"data/projects.json":     "{}",
	})

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name: "no filters",
			want: []string{"assets/alpha/1.png", "assets/alpha/raw/1.psd", "assets/beta/1.jpg", "data/projects.json"},
		},
		{
			name:    "exclude raw subtree",
			exclude: []string{"assets/**/raw/**"},
			want:    []string{"assets/alpha/1.png", "assets/beta/1.jpg", "data/projects.json"},
		},
		{
			name:    "include by base name",
			include: []string{"*.json", "*.png"},
			want:    []string{"assets/alpha/1.png", "data/projects.json"},
		},
		{
			name:    "include doublestar",
			include: []string{"assets/beta/**"},
			want:    []string{"assets/beta/1.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Walk(Config{
				RootDir: root,
				Dirs:    []string{"assets", "data"},
				Include: tt.include,
				Exclude: tt.exclude,
			})
			if err != nil {
				t.Fatalf("Walk() error: %v", err)
			}
			if got := relPaths(files); !equalStrings(got, tt.want) {
				t.Errorf("Walk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	root := writeSite(t, map[string]string{
		"assets/small.png": "small",
		"assets/big.png":   string(make([]byte, 200)),
	})

	files, err := Walk(Config{RootDir: root, Dirs: []string{"assets"}, MaxFileSize: 100})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !equalStrings(got, []string{"assets/small.png"}) {
		t.Errorf("Walk() = %v, want only small.png", got)
	}
}

func TestWalk_Gitignore(t *testing.T) {
	root := writeSite(t, map[string]string{
		".gitignore":             "*.tmp\nassets/drafts/\n",
		"assets/a.png":           "a",
		"assets/b.tmp":           "tmp",
		"assets/drafts/c.png":    "c",
		"assets/published/d.png": "d",
	})

	files, err := Walk(Config{RootDir: root, Dirs: []string{"assets"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"assets/a.png", "assets/published/d.png"}
	if got := relPaths(files); !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.png", nil) {
		t.Error("empty include patterns should include everything")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.png", nil) {
		t.Error("empty exclude patterns should exclude nothing")
	}
}

func TestMatchesExclude_Pattern(t *testing.T) {
	patterns := []string{"**/*.psd"}
	if !MatchesExclude("assets/alpha/cover.psd", patterns) {
		t.Error("cover.psd should match **/*.psd")
	}
	if MatchesExclude("assets/alpha/cover.png", patterns) {
		t.Error("cover.png should not match **/*.psd")
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"shot.PNG", KindImage},
		{"hero.jpeg", KindImage},
		{"logo.svg", KindImage},
		{"projects.json", KindData},
		{"site.css", KindStyle},
		{"app.js", KindScript},
		{"inter.woff2", KindFont},
		{"README", KindOther},
		{"notes.txt", KindOther},
	}
	for _, tt := range tests {
		if got := DetectKind(tt.name); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

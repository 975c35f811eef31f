package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the largest site file copied by a build (32 MB).
const DefaultMaxFileSize int64 = 32 << 20

// File describes one site file picked up for publishing.
type File struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the site root.
	Size        int64
	Kind        Kind
	ContentHash string // SHA-256 hex digest of the file content.
}

// Config controls Walk.
type Config struct {
	RootDir     string   // Site root.
	Dirs        []string // Subtrees of RootDir to walk, e.g. "data", "assets".
	Include     []string // Glob patterns; only matching files are kept.
	Exclude     []string // Glob patterns; matching files are dropped.
	MaxFileSize int64    // 0 means DefaultMaxFileSize.
}

// Walk collects the files under each of config.Dirs that pass filtering.
// Missing subtrees are skipped. Paths listed in a .gitignore at the site root
// are honoured.
func Walk(config Config) ([]File, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	ignored := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []File
	for _, dir := range config.Dirs {
		start := filepath.Join(root, filepath.FromSlash(dir))
		if _, err := os.Stat(start); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		err := filepath.WalkDir(start, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}

			name := d.Name()
			if d.IsDir() {
				if path != start && shouldExcludeDir(name) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || shouldExcludeFile(name) {
				return nil
			}

			relPath, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			if matchesGitignore(relPath, ignored) {
				return nil
			}
			if !MatchesInclude(relPath, config.Include) || MatchesExclude(relPath, config.Exclude) {
				return nil
			}

			info, err := d.Info()
			if err != nil || info.Size() > maxSize {
				return nil
			}

			hash, err := HashFile(path)
			if err != nil {
				return nil
			}

			files = append(files, File{
				Path:        path,
				RelPath:     filepath.ToSlash(relPath),
				Size:        info.Size(),
				Kind:        DetectKind(name),
				ContentHash: hash,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walker: traversal of %s: %w", dir, err)
		}
	}

	return files, nil
}

// HashFile computes the SHA-256 digest of the given file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks a relative path against gitignore patterns. A
// pattern without a slash matches any path component; one with a slash
// matches the path or one of its parent directories.
func matchesGitignore(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(relPath)
	parts := strings.Split(normalized, "/")

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")
		if strings.Contains(pattern, "/") {
			for i := range parts {
				prefix := strings.Join(parts[:i+1], "/")
				if matched, _ := filepath.Match(pattern, prefix); matched {
					return true
				}
			}
			continue
		}
		for _, part := range parts {
			if matched, _ := filepath.Match(pattern, part); matched {
				return true
			}
		}
	}
	return false
}

package pipeline

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Manifest is written after a successful run as .lastrun.manifest.json.
type Manifest struct {
	RunID     string         `json:"runId"`
	StartedAt string         `json:"startedAt"`
	Seed      int64          `json:"seed"`
	Format    string         `json:"format"`
	Files     []ManifestFile `json:"files"`
}

// ManifestFile describes one output file; Path is relative to the data dir.
type ManifestFile struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	XXHash string `json:"xxhash"`
}

func describeFiles(baseDir string, paths []string) ([]ManifestFile, error) {
	files := make([]ManifestFile, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(baseDir, p)
		if err != nil {
			return nil, err
		}
		sum, size, err := fileChecksum(p)
		if err != nil {
			return nil, err
		}
		files = append(files, ManifestFile{Path: filepath.ToSlash(rel), Bytes: size, XXHash: sum})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func fileChecksum(path string) (string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	n, err := io.Copy(hasher, file)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash file %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), n, nil
}

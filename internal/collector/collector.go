package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"trainset/internal/models"
	"trainset/internal/utils"
)

// Size bounds for candidate files, in bytes, both inclusive. Tiny files
// carry no signal and huge ones are usually generated code.
const (
	MinFileSize = 100
	MaxFileSize = 50000
)

// Collect walks rootPath and returns every regular file that passes the
// extension, path-segment and size filters, with its content loaded. Files
// that cannot be read as UTF-8 text are skipped with a warning and the walk
// continues; this is the only recoverable error path in the pipeline.
// Results come back in traversal order.
func Collect(rootPath string) ([]models.SourceFile, error) {
	var files []models.SourceFile
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable entry should not kill the whole run; warn and
			// move on, pruning the subtree when it is a directory.
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if utils.ExcludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !utils.IsAllowedExt(path) {
			return nil
		}

		info, ierr := d.Info()
		if ierr != nil {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: %v\n", path, ierr)
			return nil
		}
		if info.Size() < MinFileSize || info.Size() > MaxFileSize {
			return nil
		}

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: %v\n", path, rerr)
			return nil
		}
		if !utf8.Valid(data) {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: not valid UTF-8 text\n", path)
			return nil
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			rel = path
		}

		files = append(files, models.SourceFile{
			Path:     filepath.ToSlash(rel),
			Content:  string(data),
			Language: utils.DetectLanguage(path),
			Size:     info.Size(),
		})
		return nil
	})
	return files, err
}

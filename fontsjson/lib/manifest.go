package lib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Record describes one font file in the manifest
type Record struct {
	Key  string `json:"key" jsonschema_description:"camelCase identifier, unique within the manifest"`
	Name string `json:"name" jsonschema_description:"file name without its extension"`
	URL  string `json:"url" jsonschema_description:"download URL of the file"`
}

// Options controls how a folder is turned into a manifest
type Options struct {
	// BaseURL is prepended to each file name, separated by a slash.
	BaseURL string
	// Extensions limits the files considered, compared case-insensitively
	// with a leading dot. Empty means every regular file.
	Extensions []string
	// SkipDegenerate skips files whose names yield no key, or cannot be
	// written as JSON text, instead of failing.
	SkipDegenerate bool
}

// SkippedFile is a file left out of the manifest and the reason why
type SkippedFile struct {
	Name string
	Err  error
}

// Result holds the records of one build plus the files that were skipped
type Result struct {
	Records []Record
	Skipped []SkippedFile
}

// Build lists folder and returns one record per regular file, in listing order.
// Keys are unique within the result.
func Build(folder string, opts Options) (*Result, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	res := &Result{Records: make([]Record, 0, len(entries))}
	keys := NewKeySet()

	for _, entry := range entries {
		if !isFile(folder, entry) || !opts.accepts(entry.Name()) {
			continue
		}

		fileName := entry.Name()
		candidate, err := recordKey(fileName)
		if err != nil {
			if opts.SkipDegenerate {
				res.Skipped = append(res.Skipped, SkippedFile{Name: fileName, Err: err})
				continue
			}
			return nil, fmt.Errorf("%q: %w", fileName, err)
		}

		res.Records = append(res.Records, Record{
			Key:  keys.Resolve(candidate),
			Name: TrimExt(fileName),
			URL:  FileURL(opts.BaseURL, fileName),
		})
	}

	return res, nil
}

// recordKey checks that fileName survives JSON encoding unchanged and
// returns its candidate key.
func recordKey(fileName string) (string, error) {
	// encoding/json would replace invalid bytes with U+FFFD
	if !utf8.ValidString(fileName) {
		return "", fmt.Errorf("encode manifest: %w", ErrInvalidUTF8)
	}
	return ToKey(fileName)
}

// FileURL joins baseURL and fileName with a slash. Spaces in the file name
// become %20; nothing else is escaped.
func FileURL(baseURL, fileName string) string {
	return baseURL + "/" + strings.ReplaceAll(fileName, " ", "%20")
}

// Marshal encodes records as an indented JSON array
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func (o Options) accepts(fileName string) bool {
	if len(o.Extensions) == 0 {
		return true
	}
	ext := Ext(fileName)
	for _, want := range o.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// isFile reports whether entry is a regular file, following symlinks.
// Broken links are not files.
func isFile(folder string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(folder, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

package tfidf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the trimmed, non-empty lines of the file at path.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(scanLines)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines splits on "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// a trailing "\r" may be the first half of "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// LoadStopwords reads one stopword per line. Entries are kept verbatim
// (no case folding).
func LoadStopwords(path string) (*Stopwords, error) {
	words, err := ReadLines(path)
	if err != nil {
		return nil, missing(ResourceStopwords, path, err)
	}
	return NewStopwords(words...), nil
}

// LoadManifest reads the ordered list of document names.
func LoadManifest(path string) ([]string, error) {
	names, err := ReadLines(path)
	if err != nil {
		return nil, missing(ResourceManifest, path, err)
	}
	return names, nil
}

// ReadDocument reads the document called name from dir. HTML documents
// (see isHTML) are reduced to their visible text; if parsing fails the raw
// text is used.
func ReadDocument(dir, name, htmlMode string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", missing(ResourceDocument, path, err)
	}
	if isHTML(htmlMode, name) {
		if text, err := ExtractText(b); err == nil {
			return text, nil
		}
	}
	return string(b), nil
}

// OutputPaths returns where the preprocessed tokens and the ranking of the
// document called name are written: <dir>/preproc_<name> and <dir>/tfidf_<name>,
// with any directory part of name kept.
func OutputPaths(dir, name string) (preproc, ranking string) {
	sub, base := filepath.Split(filepath.FromSlash(name))
	return filepath.Join(dir, sub, "preproc_"+base), filepath.Join(dir, sub, "tfidf_"+base)
}

// WriteResult writes both output files of r into dir and returns their paths.
func WriteResult(dir string, r Result) ([]string, error) {
	preproc, ranking := OutputPaths(dir, r.Name)
	if err := os.MkdirAll(filepath.Dir(preproc), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(preproc, []byte(JoinTokens(r.Tokens)), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", preproc, err)
	}
	if err := os.WriteFile(ranking, []byte(FormatPairs(r.Top)), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", ranking, err)
	}
	return []string{preproc, ranking}, nil
}

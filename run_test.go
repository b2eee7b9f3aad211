package tfidf

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// newFixture lays out a small corpus and returns a config pointing at it.
func newFixture(t *testing.T, manifest string) Config {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stopwords.txt"), "the\nis\nsee\n")
	writeFile(t, filepath.Join(dir, "tfidf_docs.txt"), manifest)
	writeFile(t, filepath.Join(dir, "a.txt"), "The cat is running quickly")
	writeFile(t, filepath.Join(dir, "b.txt"), "The dog is running. See https://dog.example.com/run!")
	writeFile(t, filepath.Join(dir, "c.html"),
		"<html><head><style>p{color:red}</style><script>var x</script></head>"+
			"<body><p>Payment pending</p></body></html>")

	c := DefaultConfig()
	c.StopwordsPath = filepath.Join(dir, "stopwords.txt")
	c.ManifestPath = filepath.Join(dir, "tfidf_docs.txt")
	c.DocumentDir = dir
	c.HTML = HTMLAuto
	return c
}

// --- TestRun ---

func TestRun(t *testing.T) {
	cfg := newFixture(t, "a.txt\nb.txt\nc.html\n")
	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if rep.RunID == "" {
		t.Fatalf("Run should assign a run id")
	}
	if len(rep.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", rep.Failures)
	}
	if len(rep.Written) != 6 {
		t.Fatalf("Written=%v; want 6 files", rep.Written)
	}

	// N=3: runn appears in 2 documents, every other term in 1.
	want := map[string][2]string{
		"a.txt":  {"cat runn quick", "[('cat', 0.7), ('quick', 0.7), ('runn', 0.47)]"},
		"b.txt":  {"dog runn", "[('dog', 1.05), ('runn', 0.7)]"},
		"c.html": {"pay pend", "[('pay', 1.05), ('pend', 1.05)]"},
	}
	for name, w := range want {
		preproc, ranking := OutputPaths(cfg.DocumentDir, name)
		if got := readFile(t, preproc); got != w[0] {
			t.Fatalf("%s preproc=%q; want %q", name, got, w[0])
		}
		if got := readFile(t, ranking); got != w[1] {
			t.Fatalf("%s tfidf=%q; want %q", name, got, w[1])
		}
	}
}

func TestRunIsolatesMissingDocument(t *testing.T) {
	cfg := newFixture(t, "a.txt\nmissing.txt\nb.txt\nc.html\n")
	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(rep.Failures) != 1 || rep.Failures[0].Name != "missing.txt" {
		t.Fatalf("Failures=%v; want missing.txt", rep.Failures)
	}
	if !errors.Is(rep.Failures[0].Err, ErrMissingResource) {
		t.Fatalf("failure err=%v; want ErrMissingResource", rep.Failures[0].Err)
	}
	var names []string
	for _, r := range rep.Results {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"a.txt", "b.txt", "c.html"}, names); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
	// the missing document does not count towards N
	if got := FormatPairs(rep.Results[0].Top); got != "[('cat', 0.7), ('quick', 0.7), ('runn', 0.47)]" {
		t.Fatalf("a.txt ranking=%q", got)
	}
}

func TestRunFailFast(t *testing.T) {
	cfg := newFixture(t, "a.txt\nmissing.txt\n")
	cfg.FailFast = true
	_, err := Run(cfg, quiet)
	if !errors.Is(err, ErrMissingResource) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Run err=%v; want missing document", err)
	}
	preproc, _ := OutputPaths(cfg.DocumentDir, "a.txt")
	if _, err := os.Stat(preproc); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("no output should be written on a fail-fast abort")
	}
}

func TestRunMissingInputs(t *testing.T) {
	cfg := newFixture(t, "a.txt\n")
	cfg.StopwordsPath += ".gone"
	_, err := Run(cfg, quiet)
	var mr *MissingResourceError
	if !errors.As(err, &mr) || mr.Kind != ResourceStopwords {
		t.Fatalf("Run err=%v; want missing stopwords", err)
	}

	cfg = newFixture(t, "a.txt\n")
	cfg.ManifestPath += ".gone"
	_, err = Run(cfg, quiet)
	if !errors.As(err, &mr) || mr.Kind != ResourceManifest {
		t.Fatalf("Run err=%v; want missing manifest", err)
	}

	if _, err := Run(Config{}, quiet); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Run(empty config) err=%v; want ErrInvalidConfig", err)
	}
}

func TestRunEmptyManifest(t *testing.T) {
	cfg := newFixture(t, "\n\n")
	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(rep.Results) != 0 || len(rep.Written) != 0 {
		t.Fatalf("empty manifest produced %v / %v", rep.Results, rep.Written)
	}
}

func TestRunDefaultKeepsMarkup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stopwords.txt"), "the\n")
	writeFile(t, filepath.Join(dir, "docs.txt"), "page.html\n")
	writeFile(t, filepath.Join(dir, "page.html"), "<p>Hello</p><script>alert</script>")

	cfg := DefaultConfig()
	cfg.StopwordsPath = filepath.Join(dir, "stopwords.txt")
	cfg.ManifestPath = filepath.Join(dir, "docs.txt")
	cfg.DocumentDir = dir

	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := []string{"p", "hello", "p", "script", "alert", "script"}
	if diff := cmp.Diff(want, rep.Results[0].Tokens); diff != "" {
		t.Fatalf("default run must treat .html as raw text (-want +got):\n%s", diff)
	}
}

func TestRunEmptyDocument(t *testing.T) {
	cfg := newFixture(t, "a.txt\nempty.txt\n")
	writeFile(t, filepath.Join(cfg.DocumentDir, "empty.txt"), "The is THE, is.")
	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	preproc, ranking := OutputPaths(cfg.DocumentDir, "empty.txt")
	if got := readFile(t, preproc); got != "" {
		t.Fatalf("empty preproc=%q", got)
	}
	if got := readFile(t, ranking); got != "[]" {
		t.Fatalf("empty tfidf=%q", got)
	}
	if len(rep.Results) != 2 {
		t.Fatalf("Results=%d; want 2", len(rep.Results))
	}
}

func TestRunOptions(t *testing.T) {
	cfg := newFixture(t, "a.txt\nbare.txt\n")
	writeFile(t, filepath.Join(cfg.DocumentDir, "bare.txt"), "ing and ly")
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.TopK = 2
	cfg.BuiltinStopwords = true
	cfg.PreserveBareSuffix = true

	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	bare := rep.Results[1]
	if diff := cmp.Diff([]string{"ing", "ly"}, bare.Tokens); diff != "" {
		t.Fatalf("bare tokens mismatch (-want +got):\n%s", diff)
	}
	for _, r := range rep.Results {
		if len(r.Top) > 2 {
			t.Fatalf("%s top=%v; want at most 2", r.Name, r.Top)
		}
	}
	preproc, _ := OutputPaths(cfg.OutputDir, "bare.txt")
	if got := readFile(t, preproc); got != "ing ly" {
		t.Fatalf("bare preproc=%q", got)
	}
}

func TestRunExportsToSQLite(t *testing.T) {
	cfg := newFixture(t, "a.txt\nb.txt\nc.html\n")
	cfg.SQLitePath = filepath.Join(t.TempDir(), "runs.db")
	rep, err := Run(cfg, quiet)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	store, err := OpenResultStore(cfg.SQLitePath)
	if err != nil {
		t.Fatalf("OpenResultStore error: %v", err)
	}
	defer store.Close()
	for _, r := range rep.Results {
		got, err := store.TopTerms(rep.RunID, r.Name, DefaultTopK)
		if err != nil {
			t.Fatalf("TopTerms(%s) error: %v", r.Name, err)
		}
		if diff := cmp.Diff(r.Top, got); diff != "" {
			t.Fatalf("TopTerms(%s) mismatch (-want +got):\n%s", r.Name, diff)
		}
	}
}

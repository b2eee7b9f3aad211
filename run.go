package tfidf

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Failure records a document that could not be read and was left out of the
// corpus.
type Failure struct {
	Name string
	Err  error
}

// Report summarises one run.
type Report struct {
	RunID    string
	Results  []Result
	Failures []Failure
	Written  []string // output files, in write order
}

// Run executes the whole batch: load inputs, preprocess every document,
// score the corpus, then write outputs. Nothing is written unless both
// phases complete. A nil logger means slog.Default().
func Run(cfg Config, log *slog.Logger) (*Report, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	k := cfg.TopK
	if k == 0 {
		k = DefaultTopK
	}
	rep := &Report{RunID: uuid.NewString()}
	log = log.With("run", rep.RunID)
	start := time.Now()

	stop, err := LoadStopwords(cfg.StopwordsPath)
	if err != nil {
		return nil, err
	}
	if cfg.BuiltinStopwords {
		stop = stop.WithEnglish()
	}
	names, err := LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	log.Info("inputs loaded", "stopwords", stop.Len(), "documents", len(names))

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		text, err := ReadDocument(cfg.DocumentDir, name, cfg.HTML)
		if err != nil {
			if cfg.FailFast {
				return nil, err
			}
			log.Warn("skipping document", "name", name, "err", err)
			rep.Failures = append(rep.Failures, Failure{Name: name, Err: err})
			continue
		}
		sources = append(sources, Source{Name: name, Text: text})
	}

	p := &Preprocessor{Stop: stop, Stemmer: Stemmer{PreserveBareSuffix: cfg.PreserveBareSuffix}}
	corpus := PreprocessAll(sources, p)
	for _, d := range corpus {
		log.Debug("preprocessed", "name", d.Name, "tokens", len(d.Tokens))
	}

	rep.Results = ScoreAll(corpus, k)
	log.Info("corpus scored", "documents", len(rep.Results), "failed", len(rep.Failures))

	out := cfg.outputDir()
	for _, r := range rep.Results {
		paths, err := WriteResult(out, r)
		if err != nil {
			return rep, err
		}
		rep.Written = append(rep.Written, paths...)
		log.Debug("written", "name", r.Name, "top", FormatPairs(r.Top))
	}

	if cfg.SQLitePath != "" {
		if err := exportRun(cfg.SQLitePath, rep.RunID, k, rep.Results); err != nil {
			return rep, err
		}
		log.Info("results exported", "sqlite", cfg.SQLitePath)
	}

	log.Info("run finished", "elapsed", time.Since(start), "files", len(rep.Written))
	return rep, nil
}

func exportRun(path, runID string, k int, results []Result) error {
	store, err := OpenResultStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveRun(runID, k, results); err != nil {
		return fmt.Errorf("export run %s: %w", runID, err)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tfidf"
)

var (
	confPath      string
	stopwordsPath string
	manifestPath  string
	documentDir   string
	outputDir     string
	sqlitePath    string
	htmlMode      string
	topK          int
	builtin       bool
	preserve      bool
	failFast      bool
)

func init() {
	flag.StringVar(&confPath, "conf", "", "yaml config file")
	flag.StringVar(&stopwordsPath, "stopwords", "", "stopword list, one per line")
	flag.StringVar(&manifestPath, "manifest", "", "document list, one name per line")
	flag.StringVar(&documentDir, "dir", "", "directory manifest names resolve against")
	flag.StringVar(&outputDir, "out", "", "output directory (default: -dir)")
	flag.StringVar(&sqlitePath, "sqlite", "", "export results to this SQLite database")
	flag.StringVar(&htmlMode, "html", "off", "parse documents as HTML: off, auto or on")
	flag.IntVar(&topK, "k", 0, "terms reported per document (default 5)")
	flag.BoolVar(&builtin, "builtin-stopwords", false, "also drop Snowball English stopwords")
	flag.BoolVar(&preserve, "preserve-bare-suffix", false, `do not stem "ing", "ly", "ment" to nothing`)
	flag.BoolVar(&failFast, "fail-fast", false, "abort on the first unreadable document")
}

func main() {
	flag.Parse()

	conf, err := loadConf()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rep, err := tfidf.Run(conf, log)
	if err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
	for _, f := range rep.Failures {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", f.Name, f.Err)
	}
	for _, r := range rep.Results {
		fmt.Printf("%s\t%s\n", r.Name, tfidf.FormatPairs(r.Top))
	}
}

// loadConf layers defaults, then the -conf file, then explicitly set flags.
func loadConf() (tfidf.Config, error) {
	conf := tfidf.DefaultConfig()
	if confPath != "" {
		c, err := tfidf.LoadConfig(confPath)
		if err != nil {
			return conf, err
		}
		conf = c
	}
	override(&conf)
	return conf, nil
}

// override applies flags that were set explicitly on top of the file config.
func override(c *tfidf.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stopwords":
			c.StopwordsPath = stopwordsPath
		case "manifest":
			c.ManifestPath = manifestPath
		case "dir":
			c.DocumentDir = documentDir
		case "out":
			c.OutputDir = outputDir
		case "sqlite":
			c.SQLitePath = sqlitePath
		case "html":
			c.HTML = htmlMode
		case "k":
			c.TopK = topK
		case "builtin-stopwords":
			c.BuiltinStopwords = builtin
		case "preserve-bare-suffix":
			c.PreserveBareSuffix = preserve
		case "fail-fast":
			c.FailFast = failFast
		}
	})
}

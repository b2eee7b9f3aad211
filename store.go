package tfidf

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type runRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	TopK      int
	Documents int
}

func (runRecord) TableName() string { return "runs" }

type documentRecord struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Tokens    string
	NumTokens int
}

func (documentRecord) TableName() string { return "documents" }

type termScoreRecord struct {
	ID         uint   `gorm:"primaryKey"`
	DocumentID uint   `gorm:"index;not null"`
	Term       string `gorm:"not null"`
	Score      float64
	Position   int // 1-based, over the full ranking
}

func (termScoreRecord) TableName() string { return "term_scores" }

// ResultStore exports scored runs into a SQLite database for inspection.
// Every run appends a new run row; Run never reads the database, so a run's
// scores depend only on its own inputs. TopTerms and Runs exist for people
// and tests looking at the export.
type ResultStore struct {
	db *gorm.DB
}

// OpenResultStore opens (or creates) the SQLite database at path.
func OpenResultStore(path string) (*ResultStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&runRecord{}, &documentRecord{}, &termScoreRecord{}); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &ResultStore{db: db}, nil
}

// SaveRun stores every result of one run in a single transaction.
func (s *ResultStore) SaveRun(runID string, topK int, results []Result) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		run := runRecord{ID: runID, CreatedAt: time.Now().UTC(), TopK: topK, Documents: len(results)}
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		for _, r := range results {
			doc := documentRecord{
				RunID:     runID,
				Name:      r.Name,
				Tokens:    JoinTokens(r.Tokens),
				NumTokens: len(r.Tokens),
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			ranked := Rank(r.Scores)
			if len(ranked) == 0 {
				continue
			}
			rows := make([]termScoreRecord, len(ranked))
			for i, p := range ranked {
				rows[i] = termScoreRecord{DocumentID: doc.ID, Term: p.Term, Score: p.Score, Position: i + 1}
			}
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// TopTerms reads back the k best terms stored for a document of a run.
// k <= 0 returns the whole ranking.
func (s *ResultStore) TopTerms(runID, name string, k int) ([]Pair, error) {
	var doc documentRecord
	if err := s.db.Where("run_id = ? AND name = ?", runID, name).First(&doc).Error; err != nil {
		return nil, err
	}
	q := s.db.Where("document_id = ?", doc.ID).Order("position")
	if k > 0 {
		q = q.Limit(k)
	}
	var rows []termScoreRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(rows))
	for i, row := range rows {
		pairs[i] = Pair{Term: row.Term, Score: row.Score}
	}
	return pairs, nil
}

// Runs returns the number of stored runs.
func (s *ResultStore) Runs() (int64, error) {
	var n int64
	err := s.db.Model(&runRecord{}).Count(&n).Error
	return n, err
}

// Close closes the database connection.
func (s *ResultStore) Close() error {
	return closeDB(s.db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

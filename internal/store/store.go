package store

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchemaVersion is written on every Set so that a future migration can
// rewrite stored values per key.
const SchemaVersion = 1

// Keys under which the tracked collections are persisted.
const (
	KeyViewedQuestions     = "viewedQuestions"
	KeyBookmarkedQuestions = "bookmarkedQuestions"
	KeyQuizScores          = "quizScores"
	KeyPracticeSessions    = "practiceSessions"
	KeyMockInterviews      = "mockInterviews"
	KeyStudyNotes          = "studyNotes"
	KeyStudyPlan           = "studyPlan"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key           string    `gorm:"primaryKey;column:key"`
	Value         string    `gorm:"type:text;not null"`
	SchemaVersion int       `gorm:"not null;default:1"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Store is a typed, best-effort key-value store. Get decodes the JSON value
// under key into dest and reports whether a stored value was decoded; on a
// missing key, a decode failure or any storage error it leaves dest untouched
// so the caller's default survives. Set serializes value under key; write
// failures are logged and swallowed. Persistence is best-effort, not
// transactional, and single-threaded access is assumed.
type Store interface {
	Get(key string, dest any) bool
	Set(key string, value any)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string, dest any) bool {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Warn().Err(err).Str("key", key).Msg("Store read failed, using default")
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Corrupt stored value, using default")
		return false
	}
	return true
}

func (s *gormStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to serialize value for store")
		return
	}
	entry := Entry{Key: key, Value: string(raw), SchemaVersion: SchemaVersion}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "schema_version", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Store write failed, value not persisted")
	}
}

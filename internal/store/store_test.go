package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN is named after the
// test so pooled connections share one database without leaking state
// between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return db
}

func newTestStore(t *testing.T) Store {
	t.Helper()
	return NewStore(newTestDB(t))
}

func TestStore_QuizScoreRoundTrip(t *testing.T) {
	st := newTestStore(t)

	st.Set(KeyQuizScores, map[string]int{"fundamentals": 80})

	scores := make(map[string]int)
	found := st.Get(KeyQuizScores, &scores)

	assert.True(t, found)
	assert.Equal(t, map[string]int{"fundamentals": 80}, scores)
}

func TestStore_MissingKeyLeavesDefault(t *testing.T) {
	st := newTestStore(t)

	ids := []string{"fallback"}
	found := st.Get(KeyViewedQuestions, &ids)

	assert.False(t, found)
	assert.Equal(t, []string{"fallback"}, ids)
}

func TestStore_CorruptValueLeavesDefault(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&Entry{Key: KeyQuizScores, Value: "{not json", SchemaVersion: SchemaVersion}).Error)

	st := NewStore(db)
	scores := map[string]int{"default": 1}
	found := st.Get(KeyQuizScores, &scores)

	assert.False(t, found)
	assert.Equal(t, map[string]int{"default": 1}, scores)
}

func TestStore_LastWriteWins(t *testing.T) {
	st := newTestStore(t)

	st.Set(KeyViewedQuestions, []string{"hooks"})
	st.Set(KeyViewedQuestions, []string{"hooks", "redux"})

	var ids []string
	require.True(t, st.Get(KeyViewedQuestions, &ids))
	assert.Equal(t, []string{"hooks", "redux"}, ids)
}

func TestStore_SchemaVersionWritten(t *testing.T) {
	db := newTestDB(t)

	NewStore(db).Set(KeyStudyPlan, map[string]string{"name": "ramp-up"})

	var entry Entry
	require.NoError(t, db.First(&entry, "key = ?", KeyStudyPlan).Error)
	assert.Equal(t, SchemaVersion, entry.SchemaVersion)
}

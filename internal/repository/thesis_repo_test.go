package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesisai/backend/internal/model"
	"gorm.io/gorm"
)

func newThesisTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Thesis{},
		&model.AdvisorComment{},
		&model.ChapterSection{},
		&model.Message{},
	))
	return db
}

func TestThesisRepositoryGetPreloadsAssociations(t *testing.T) {
	db := newThesisTestDB(t)
	repo := NewThesisRepository(db)

	thesisID := uuid.NewString()
	require.NoError(t, repo.Create(&model.Thesis{
		ID:     thesisID,
		UserID: "student-1",
		Title:  "A Study of Things",
	}))
	require.NoError(t, db.Create(&model.AdvisorComment{
		ID:        uuid.NewString(),
		ThesisID:  thesisID,
		ChapterID: "chapter-1",
		RawText:   "Sharpen the research question",
		Status:    model.CommentStatusPending,
	}).Error)
	require.NoError(t, db.Create(&model.ChapterSection{
		ThesisID:  thesisID,
		ChapterID: "chapter-1",
		SectionID: "1.1",
		Content:   "Introduction.",
	}).Error)

	thesis, err := repo.Get(thesisID)
	require.NoError(t, err)
	assert.Len(t, thesis.Comments, 1)
	assert.Len(t, thesis.Sections, 1)
}

func TestThesisRepositoryDeleteCascades(t *testing.T) {
	db := newThesisTestDB(t)
	repo := NewThesisRepository(db)

	thesisID := uuid.NewString()
	otherID := uuid.NewString()
	for _, id := range []string{thesisID, otherID} {
		require.NoError(t, repo.Create(&model.Thesis{ID: id, UserID: "student-1", Title: "t"}))
		require.NoError(t, db.Create(&model.AdvisorComment{
			ID: uuid.NewString(), ThesisID: id, ChapterID: "chapter-1", RawText: "x",
		}).Error)
		require.NoError(t, db.Create(&model.ChapterSection{
			ThesisID: id, ChapterID: "chapter-1", SectionID: "1.1",
		}).Error)
		require.NoError(t, db.Create(&model.Message{
			ThesisID: id, SenderID: "u", SenderRole: "student", Body: "hi",
		}).Error)
	}

	require.NoError(t, repo.Delete(thesisID))

	_, err := repo.Get(thesisID)
	assert.ErrorIs(t, err, ErrNotFound)

	var comments, sections, messages int64
	db.Model(&model.AdvisorComment{}).Where("thesis_id = ?", thesisID).Count(&comments)
	db.Model(&model.ChapterSection{}).Where("thesis_id = ?", thesisID).Count(&sections)
	db.Model(&model.Message{}).Where("thesis_id = ?", thesisID).Count(&messages)
	assert.Zero(t, comments)
	assert.Zero(t, sections)
	assert.Zero(t, messages)

	// 其他论文不受影响
	other, err := repo.Get(otherID)
	require.NoError(t, err)
	assert.Len(t, other.Comments, 1)
}

func TestThesisRepositoryGetByUserOrdering(t *testing.T) {
	db := newThesisTestDB(t)
	repo := NewThesisRepository(db)

	require.NoError(t, repo.Create(&model.Thesis{ID: uuid.NewString(), UserID: "u-1", Title: "first"}))
	require.NoError(t, repo.Create(&model.Thesis{ID: uuid.NewString(), UserID: "u-1", Title: "second"}))
	require.NoError(t, repo.Create(&model.Thesis{ID: uuid.NewString(), UserID: "u-2", Title: "other"}))

	theses, err := repo.GetByUser("u-1")
	require.NoError(t, err)
	assert.Len(t, theses, 2)
}

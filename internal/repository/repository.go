package repository

import (
	"errors"

	"github.com/thesisai/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type ThesisRepository interface {
	Create(thesis *model.Thesis) error
	Get(id string) (*model.Thesis, error)
	GetByUser(userID string) ([]model.Thesis, error)
	Save(thesis *model.Thesis) error
	Delete(id string) error
}

type AdvisorCommentRepository interface {
	Create(comment *model.AdvisorComment) error
	Get(id string) (*model.AdvisorComment, error)
	ListByThesis(thesisID string) ([]model.AdvisorComment, error)
	ListByThesisAndStatus(thesisID, status string) ([]model.AdvisorComment, error)
	ListPending(thesisID string) ([]model.AdvisorComment, error)
	Save(comment *model.AdvisorComment) error
	Delete(id string) error
}

type ChapterSectionRepository interface {
	Get(thesisID, chapterID, sectionID string) (*model.ChapterSection, error)
	ListByChapter(thesisID, chapterID string) ([]model.ChapterSection, error)
	Upsert(section *model.ChapterSection) error
}

type ProfileRepository interface {
	Get(userID string) (*model.Profile, error)
	Save(profile *model.Profile) error
}

type MessageRepository interface {
	Create(msg *model.Message) error
	ListByThesis(thesisID string) ([]model.Message, error)
	MarkRead(thesisID, readerID string) (int64, error)
}

type OnboardingRepository interface {
	Get(userID string) (*model.OnboardingState, error)
	Save(state *model.OnboardingState) error
}

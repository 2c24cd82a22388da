package model

import (
	"time"
)

// Thesis 论文项目
type Thesis struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;index;not null"`
	Title     string    `json:"title" gorm:"size:500;not null"`
	Status    string    `json:"status" gorm:"size:50;default:in_progress"` // in_progress, under_review, completed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []AdvisorComment `json:"comments,omitempty" gorm:"foreignKey:ThesisID"`
	Sections []ChapterSection `json:"sections,omitempty" gorm:"foreignKey:ThesisID"`
}

// AdvisorComment 导师批注，挂在章节的某个片段上
type AdvisorComment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"` // UUID
	ThesisID  string    `json:"thesis_id" gorm:"size:36;index;not null"`
	AdvisorID string    `json:"advisor_id" gorm:"size:36;index"`
	ChapterID string    `json:"chapter_id" gorm:"size:50;not null"` // chapter-1 .. chapter-5
	ScopeID   string    `json:"scope_id" gorm:"size:255"`           // 点分路径，如 chapter2.theoretical_framework
	RawText   string    `json:"raw_text" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:50;default:pending"` // pending, integrated, verified
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChapterSection 某章某小节的当前已提交文本
type ChapterSection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ThesisID    string    `json:"thesis_id" gorm:"size:36;uniqueIndex:idx_section_addr;not null"`
	ChapterID   string    `json:"chapter_id" gorm:"size:50;uniqueIndex:idx_section_addr;not null"`
	SectionID   string    `json:"section_id" gorm:"size:255;uniqueIndex:idx_section_addr;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	ContentHash *string   `json:"content_hash" gorm:"size:64"` // 上次快照的 sha256，可为空
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile 用户档案与订阅信息
type Profile struct {
	UserID             string    `json:"user_id" gorm:"primaryKey;size:36"`
	Email              string    `json:"email" gorm:"size:255"`
	DisplayName        string    `json:"display_name" gorm:"size:255"`
	Role               string    `json:"role" gorm:"size:50;default:student"` // student, advisor, critic, admin
	Plan               string    `json:"plan" gorm:"size:50;default:free"`    // free, pro, pro_plus_advisor, pro_complete
	SubscriptionStatus string    `json:"subscription_status" gorm:"size:50"`  // active, canceled, past_due
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Message 学生与导师/评审之间的站内消息
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ThesisID   string    `json:"thesis_id" gorm:"size:36;index;not null"`
	SenderID   string    `json:"sender_id" gorm:"size:36;not null"`
	SenderRole string    `json:"sender_role" gorm:"size:50;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	Read       bool      `json:"read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

// OnboardingState 新用户引导进度
type OnboardingState struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;size:36"`
	Step      string    `json:"step" gorm:"size:50;default:welcome"` // welcome, profile, thesis_setup, first_chapter, done
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment status values
const (
	CommentStatusPending    = "pending"
	CommentStatusIntegrated = "integrated"
	CommentStatusVerified   = "verified"
)

// Canonical chapter slots
var ChapterSlots = []struct {
	ID    string
	Title string
}{
	{"chapter-1", "Introduction"},
	{"chapter-2", "Literature Review"},
	{"chapter-3", "Methodology"},
	{"chapter-4", "Results"},
	{"chapter-5", "Discussion and Conclusion"},
}

// IsValidChapterID 校验章节槽位
func IsValidChapterID(id string) bool {
	for _, c := range ChapterSlots {
		if c.ID == id {
			return true
		}
	}
	return false
}

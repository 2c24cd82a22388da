package eventbus

type CommentEventType string

const (
	CommentEventIntegrated CommentEventType = "Integrated"
	CommentEventVerified   CommentEventType = "Verified"
)

type CommentEvent struct {
	Type      CommentEventType
	CommentID string
	ThesisID  string
	ChapterID string
	StudentID string
}

type CommentEventHandler = Handler[CommentEvent]
type CommentEventBus = Bus[CommentEventType, CommentEvent]

func NewCommentEventBus() *CommentEventBus {
	return NewBus[CommentEventType, CommentEvent]()
}

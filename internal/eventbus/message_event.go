package eventbus

type MessageEventType string

const (
	MessageEventSent MessageEventType = "Sent"
)

type MessageEvent struct {
	Type       MessageEventType
	ThesisID   string
	SenderID   string
	SenderRole string
}

type MessageEventHandler = Handler[MessageEvent]
type MessageEventBus = Bus[MessageEventType, MessageEvent]

func NewMessageEventBus() *MessageEventBus {
	return NewBus[MessageEventType, MessageEvent]()
}

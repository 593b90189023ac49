package errors

import (
	"sync"
	"time"
)

// DefaultTTL is how long a status message stays visible when no TTL is given.
const DefaultTTL = 2 * time.Second

const maxHistory = 50

// TUIHandler collects messages for the status line of the TUI.
// Each message expires after its TTL; history is kept for debugging.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	onAdd    func(msg Message)
	now      func() time.Time
}

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
	TTL       time.Duration
}

// Expired reports whether m is no longer visible at t.
func (m Message) Expired(t time.Time) bool {
	return m.TTL > 0 && !t.Before(m.Timestamp.Add(m.TTL))
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

var _ ErrorHandler = (*TUIHandler)(nil)

// NewTUIHandler returns a handler calling onAdd for every new message.
// onAdd may be nil.
func NewTUIHandler(onAdd func(msg Message)) *TUIHandler {
	return &TUIHandler{onAdd: onAdd, now: time.Now}
}

func (h *TUIHandler) Error(msg string)   { h.Add(msg, MessageTypeError, DefaultTTL) }
func (h *TUIHandler) Warning(msg string) { h.Add(msg, MessageTypeWarning, DefaultTTL) }
func (h *TUIHandler) Info(msg string)    { h.Add(msg, MessageTypeInfo, DefaultTTL) }
func (h *TUIHandler) Success(msg string) { h.Add(msg, MessageTypeSuccess, DefaultTTL) }

// Add records a message visible for ttl. A ttl of zero never expires.
func (h *TUIHandler) Add(text string, msgType MessageType, ttl time.Duration) Message {
	h.mu.Lock()
	message := Message{Text: text, Type: msgType, Timestamp: h.now(), TTL: ttl}
	h.messages = append(h.messages, message)
	if len(h.messages) > maxHistory {
		h.messages = h.messages[len(h.messages)-maxHistory:]
	}
	onAdd := h.onAdd
	h.mu.Unlock()

	if onAdd != nil {
		onAdd(message)
	}
	return message
}

// Current returns the latest message if it has not expired.
func (h *TUIHandler) Current() (Message, bool) {
	msg, ok := h.GetLatest()
	if !ok || msg.Expired(h.now()) {
		return Message{}, false
	}
	return msg, true
}

func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}

func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

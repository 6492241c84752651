package catalog

import "sync"

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one message shown to the user.
type Notice struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NoticeLog is a Notifier that queues notices until a front end drains and
// renders them.
type NoticeLog struct {
	mu      sync.Mutex
	notices []Notice
}

func NewNoticeLog() *NoticeLog {
	return &NoticeLog{}
}

func (l *NoticeLog) Info(title, message string)    { l.add(LevelInfo, title, message) }
func (l *NoticeLog) Warning(title, message string) { l.add(LevelWarning, title, message) }
func (l *NoticeLog) Error(title, message string)   { l.add(LevelError, title, message) }

func (l *NoticeLog) add(level Level, title, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, Notice{Level: level, Title: title, Message: message})
}

// Drain returns the queued notices and empties the queue.
func (l *NoticeLog) Drain() []Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notices
	l.notices = nil
	return out
}

// Package notify shows short-lived user notifications (toasts).
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type Notifier interface {
	Success(message string)
	Error(message string)
}

// Terminal prints notifications as colored lines.
type Terminal struct {
	out     io.Writer
	mu      sync.Mutex
	success *color.Color
	failure *color.Color
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (t *Terminal) Success(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.success.Fprint(t.out, "✔ ")
	fmt.Fprintln(t.out, message)
}

func (t *Terminal) Error(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failure.Fprint(t.out, "✖ ")
	fmt.Fprintln(t.out, message)
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(message string) {
	r.add(LevelSuccess, message)
}

func (r *Recorder) Error(message string) {
	r.add(LevelError, message)
}

func (r *Recorder) add(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Level: level, Message: message})
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Messages returns the messages recorded at level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, n := range r.All() {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
}

package tui

import (
	"sync"
	"time"
)

type ToastKind int

const (
	ToastNone ToastKind = iota
	ToastLoading
	ToastSuccess
	ToastError
)

// toastTTL is how long success and error toasts stay visible.
const toastTTL = 4 * time.Second

type Toast struct {
	Kind    ToastKind
	Message string
}

// Toasts is a notifier backing the terminal UI. It is written from command
// goroutines and read on every render.
type Toasts struct {
	mu      sync.Mutex
	now     func() time.Time
	current Toast
	expires time.Time
}

func NewToasts() *Toasts {
	return &Toasts{now: time.Now}
}

func (t *Toasts) Loading(msg string) { t.show(ToastLoading, msg, time.Time{}) }
func (t *Toasts) Success(msg string) { t.show(ToastSuccess, msg, t.now().Add(toastTTL)) }
func (t *Toasts) Error(msg string)   { t.show(ToastError, msg, t.now().Add(toastTTL)) }

// Dismiss hides the loading toast. Other toasts expire on their own.
func (t *Toasts) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current.Kind == ToastLoading {
		t.current = Toast{}
	}
}

func (t *Toasts) Current() Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.expires.IsZero() && t.now().After(t.expires) {
		t.current = Toast{}
		t.expires = time.Time{}
	}

	return t.current
}

func (t *Toasts) show(kind ToastKind, msg string, expires time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = Toast{Kind: kind, Message: msg}
	t.expires = expires
}

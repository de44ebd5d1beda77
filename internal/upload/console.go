package upload

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleNotifier prints notifications as lines, for non-interactive use.
type ConsoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Loading(msg string) { n.print("...", msg) }
func (n *ConsoleNotifier) Success(msg string) { n.print("ok", msg) }
func (n *ConsoleNotifier) Error(msg string)   { n.print("error", msg) }

// Dismiss is a no-op: printed lines stay on screen.
func (n *ConsoleNotifier) Dismiss() {}

func (n *ConsoleNotifier) print(level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.w, "[%s] %s\n", level, msg)
}

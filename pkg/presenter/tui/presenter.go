package tui

import (
	"fmt"
	"io"
	"sync"
)

// FieldPresenter prints validation feedback for one field.
type FieldPresenter struct {
	mu      sync.Mutex
	out     io.Writer
	theme   Theme
	label   string
	message string
	valid   bool
}

// NewFieldPresenter writes feedback for label to out.
func NewFieldPresenter(out io.Writer, theme Theme, label string) *FieldPresenter {
	return &FieldPresenter{out: out, theme: theme, label: label}
}

func (p *FieldPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = message
	p.valid = false
	fmt.Fprintf(p.out, "%s %s\n", p.theme.ErrorPrefix, message)
}

func (p *FieldPresenter) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = ""
	p.valid = true
	fmt.Fprintf(p.out, "%s %s\n", p.theme.SuccessPrefix, p.label)
}

// Reset forgets the success marker. A pending error message stays, the same
// way the page keeps its error node.
func (p *FieldPresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.valid = false
}

// Message returns the error currently shown, if any.
func (p *FieldPresenter) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

// Valid reports whether the last feedback was a success.
func (p *FieldPresenter) Valid() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.valid
}

// SubmitControl tracks whether the session may offer the submit prompt.
type SubmitControl struct {
	mu      sync.Mutex
	enabled bool
}

func (s *SubmitControl) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *SubmitControl) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Notice prints the confirmation and the reset marker.
type Notice struct {
	mu      sync.Mutex
	out     io.Writer
	theme   Theme
	visible bool
}

// NewNotice writes notices to out.
func NewNotice(out io.Writer, theme Theme) *Notice {
	return &Notice{out: out, theme: theme}
}

func (n *Notice) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = true
	fmt.Fprintf(n.out, "%s %s\n", n.theme.NoticePrefix, message)
}

func (n *Notice) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.visible {
		return
	}
	n.visible = false
	fmt.Fprintln(n.out, "form reset")
}

// Visible reports whether the confirmation is on screen.
func (n *Notice) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

package testsupport

import "sync"

// FieldPresenter records the calls a validator makes for one field.
type FieldPresenter struct {
	mu     sync.Mutex
	Calls  []string
	Error  string
	Styled string
	Resets int
}

func (p *FieldPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "show:"+message)
	p.Error = message
	p.Styled = "error"
}

func (p *FieldPresenter) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "clear")
	p.Error = ""
	p.Styled = "success"
}

func (p *FieldPresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "reset")
	p.Styled = ""
	p.Resets++
}

// Snapshot returns the current error text and styling.
func (p *FieldPresenter) Snapshot() (string, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Error, p.Styled
}

// Submit is an in-memory submit control. It starts disabled.
type Submit struct {
	mu      sync.Mutex
	enabled bool
	Changes []bool
}

func (s *Submit) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *Submit) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	s.Changes = append(s.Changes, enabled)
}

// Notice records notices shown and hidden.
type Notice struct {
	mu      sync.Mutex
	Visible string
	Shown   []string
	Hidden  int
}

func (n *Notice) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Visible = message
	n.Shown = append(n.Shown, message)
}

func (n *Notice) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Visible = ""
	n.Hidden++
}

// Current returns the visible notice text.
func (n *Notice) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Visible
}

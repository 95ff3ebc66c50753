package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/document"
	"github.com/goliatone/go-formcheck/pkg/presenter/dom"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

// Client message types.
const (
	MessageInput  = "input"
	MessageSubmit = "submit"
)

// ClientMessage is a frame sent by the browser. Seq increases with every
// message the client sends.
type ClientMessage struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
	Seq   uint64 `json:"seq,omitempty"`
}

// Frame is a snapshot pushed to the browser. Seq is the highest client
// sequence applied before it was taken; clients skip field values from
// frames older than their latest input.
type Frame struct {
	dom.Snapshot
	Seq uint64 `json:"seq"`
}

// loopScheduler delays with the wrapped scheduler but hands the callback to
// the session loop instead of running it on the timer goroutine.
type loopScheduler struct {
	base   validator.Scheduler
	events chan<- func()
	done   <-chan struct{}
}

func (l loopScheduler) Schedule(delay time.Duration, fn func()) validator.Task {
	return l.base.Schedule(delay, func() {
		select {
		case l.events <- fn:
		case <-l.done:
		}
	})
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{OriginPatterns: s.originPatterns()}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	err = s.serveSession(r.Context(), conn)
	switch {
	case err == nil:
		conn.Close(websocket.StatusNormalClosure, "")
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway,
		errors.Is(err, context.Canceled):
	default:
		s.logger.Warn("session ended", zap.Error(err))
		conn.Close(websocket.StatusInternalError, "session error")
	}
}

func (s *Server) serveSession(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	markup, err := s.engine.RenderForm(s.data)
	if err != nil {
		return fmt.Errorf("server: render form: %w", err)
	}
	doc, err := document.ParseFragment(strings.NewReader(markup))
	if err != nil {
		return fmt.Errorf("server: parse form: %w", err)
	}

	events := make(chan func())
	sched := loopScheduler{base: s.scheduler, events: events, done: ctx.Done()}

	validatorOpts := append([]validator.Option{validator.WithLogger(s.logger)}, s.validatorOpts...)
	validatorOpts = append(validatorOpts, validator.WithScheduler(sched))
	if s.metrics != nil {
		validatorOpts = append(validatorOpts, validator.WithHooks(s.metrics.Hooks(validator.Hooks{})))
	}

	binding, err := dom.Bind(doc,
		dom.WithStyles(s.styles),
		dom.WithValidatorOptions(validatorOpts...),
	)
	if err != nil {
		return fmt.Errorf("server: bind form: %w", err)
	}
	defer binding.Close()

	if s.metrics != nil {
		s.metrics.SessionOpened()
		defer s.metrics.SessionClosed()
	}

	messages := make(chan ClientMessage)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg ClientMessage
			if err := wsjson.Read(ctx, conn, &msg); err != nil {
				readErr <- err
				return
			}
			select {
			case messages <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	var applied uint64
	if err := wsjson.Write(ctx, conn, Frame{Snapshot: binding.Snapshot()}); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case msg := <-messages:
			if msg.Seq > applied {
				applied = msg.Seq
			}
			if err := s.apply(binding, msg); err != nil {
				s.logger.Debug("client message rejected",
					zap.String("type", msg.Type),
					zap.String("field", msg.Field),
					zap.Error(err),
				)
			}
		case fn := <-events:
			fn()
		}
		if err := wsjson.Write(ctx, conn, Frame{Snapshot: binding.Snapshot(), Seq: applied}); err != nil {
			return err
		}
	}
}

func (s *Server) apply(b *dom.Binding, msg ClientMessage) error {
	switch msg.Type {
	case MessageInput:
		_, err := b.Input(validator.FieldID(msg.Field), msg.Value)
		return err
	case MessageSubmit:
		return b.Submit()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

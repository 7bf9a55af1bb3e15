package events

import "github.com/atomicstack/fzmenu/internal/logging"

type SessionTracer struct{}

type selectionReason string

const (
	SessionReasonBack      selectionReason = "back"
	SessionReasonInterrupt selectionReason = "interrupt"
)

var Session = SessionTracer{}

func (SessionTracer) Start(title string, candidates int) {
	logging.Trace("session.start", map[string]interface{}{"title": title, "candidates": candidates})
}

func (SessionTracer) Select(title, label string, cursor int) {
	logging.Trace("session.select", map[string]interface{}{"title": title, "label": label, "cursor": cursor})
}

func (SessionTracer) EmptySelect(title, query string) {
	logging.Trace("session.select.empty", map[string]interface{}{"title": title, "query": query})
}

func (SessionTracer) End(title string, reason selectionReason) {
	logging.Trace("session.end", map[string]interface{}{"title": title, "reason": string(reason)})
}

package events

import "github.com/atomicstack/fzmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type PickTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Pick    = PickTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(menu string, cursor int) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menu, "cursor": cursor})
}

func (UITracer) MenuBack(from, to string) {
	logging.Trace("menu.back", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) MenuCursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"title": title, "cursor": cursor})
}

func (ActionTracer) Run(label string, handlers int) {
	logging.Trace("action.run", map[string]interface{}{"label": label, "handlers": handlers})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (PickTracer) Toggle(menu, label string, picked bool) {
	logging.Trace("pick.toggle", map[string]interface{}{"menu": menu, "label": label, "picked": picked})
}

func (FilterTracer) Append(title, query string) {
	logging.Trace("filter.append", map[string]interface{}{"title": title, "query": query})
}

func (FilterTracer) Backspace(title, query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"title": title, "query": query})
}

func (CommandTracer) Queue(label, command string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label, "command": command})
}

func (CommandTracer) Skip(label string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(label string, exitCode int) {
	logging.Trace("command.result", map[string]interface{}{"label": label, "exit": exitCode})
}

package menu

import (
	"errors"
	"io"
	"testing"

	"github.com/atomicstack/fzmenu/internal/keys"
	"github.com/atomicstack/fzmenu/internal/match"
	"github.com/atomicstack/fzmenu/internal/render"
	"github.com/atomicstack/fzmenu/internal/session"
)

// scriptedSelector replays results and records what each selection was
// asked to show.
type scriptedSelector struct {
	results []session.Result
	calls   []selectorCall
}

type selectorCall struct {
	labels []string
	opts   session.Options
}

func (s *scriptedSelector) Run(entries []session.Entry, opts session.Options) (session.Result, error) {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	s.calls = append(s.calls, selectorCall{labels: labels, opts: opts})
	if len(s.results) == 0 {
		return session.Result{}, io.EOF
	}
	res := s.results[0]
	s.results = s.results[1:]
	return res, nil
}

func selected(label string) session.Result {
	return session.Result{Kind: session.Selected, Label: label}
}

func back() session.Result {
	return session.Result{Kind: session.Back}
}

func TestNavigatorBackAtRootReturnsNil(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{back()}}
	root := MustMenu("root", NewAction("a"))
	if err := NewNavigator(sel).Run(root); err != nil {
		t.Fatalf("expected nil on back at root, got %v", err)
	}
	if len(sel.calls) != 1 {
		t.Fatalf("expected a single selection, got %d", len(sel.calls))
	}
}

func TestNavigatorBackFromSubmenuReentersParent(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{selected("Fruits"), back(), back()}}
	root := MustMenu("Main", MustMenu("Fruits", NewAction("Apple")), NewAction("Exit"))
	if err := NewNavigator(sel).Run(root); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sel.calls) != 3 {
		t.Fatalf("expected three selections, got %d", len(sel.calls))
	}
	if got := sel.calls[1].opts.Title; got != "Main → Fruits » " {
		t.Fatalf("unexpected submenu title %q", got)
	}
	parent := sel.calls[2]
	if parent.opts.Title != "Main » " || len(parent.labels) != 2 || parent.opts.Cursor != 0 {
		t.Fatalf("expected fresh parent selection, got %#v", parent)
	}
}

func TestNavigatorInterrupt(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{{Kind: session.Interrupted}}}
	err := NewNavigator(sel).Run(MustMenu("root"))
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestNavigatorSelectorErrorIsWrapped(t *testing.T) {
	sel := &scriptedSelector{}
	err := NewNavigator(sel).Run(MustMenu("root"))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected wrapped EOF, got %v", err)
	}
}

func TestNavigatorActionStaysThenExit(t *testing.T) {
	ran := 0
	sel := &scriptedSelector{results: []session.Result{selected("go"), selected("quit")}}
	root := MustMenu("root",
		NewAction("go", Func(func() { ran++ })),
		NewAction("quit").ExitAfter(),
	)
	if err := NewNavigator(sel, WithLimit(5), WithReverse(true)).Run(root); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ran != 1 {
		t.Fatalf("expected handler to run once, got %d", ran)
	}
	if len(sel.calls) != 2 {
		t.Fatalf("expected two selections, got %d", len(sel.calls))
	}
	opts := sel.calls[1].opts
	if opts.Limit != 5 || !opts.Reverse || opts.Cursor != 0 {
		t.Fatalf("unexpected options %#v", opts)
	}
}

func TestNavigatorCarriesActionErrorIntoStatus(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{selected("bad"), back()}}
	root := MustMenu("root", NewAction("bad", ErrFunc(func(*Action) error { return errors.New("nope") })))
	if err := NewNavigator(sel).Run(root); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := sel.calls[1].opts.Status; got != "bad: nope" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestNavigatorPickRestoresCursor(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{selected("b"), back()}}
	opts := MustMenu("opts", NewPick("c", false), NewPick("b", false), NewPick("a", false))
	if err := NewNavigator(sel).Run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := sel.calls[1].opts.Cursor; got != 1 {
		t.Fatalf("expected cursor 1, got %d", got)
	}
	if got := opts.Picks(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("unexpected picks %v", got)
	}
}

func TestNavigatorPickConsistencyErrorIsFatal(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{selected("a")}}
	m := MustMenu("opts", NewPick("a", true))
	m.picks = nil
	err := NewNavigator(sel).Run(m)
	if !errors.Is(err, ErrPickMissing) {
		t.Fatalf("expected ErrPickMissing, got %v", err)
	}
}

func TestNavigatorUnknownLabel(t *testing.T) {
	sel := &scriptedSelector{results: []session.Result{selected("ghost")}}
	if err := NewNavigator(sel).Run(MustMenu("root")); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

type keyScript struct {
	keys []keys.Key
}

func (k *keyScript) Next() (keys.Key, error) {
	if len(k.keys) == 0 {
		return keys.Key{}, io.EOF
	}
	next := k.keys[0]
	k.keys = k.keys[1:]
	return next, nil
}

type frameLog struct {
	frames []render.Frame
}

func (f *frameLog) Render(fr render.Frame) error {
	f.frames = append(f.frames, fr)
	return nil
}

func (f *frameLog) Clear() error {
	return nil
}

func typed(s string) []keys.Key {
	var out []keys.Key
	for _, r := range s {
		out = append(out, keys.Printable(r))
	}
	return out
}

func TestNavigatorEndToEndSubstringSelection(t *testing.T) {
	var invoked []string
	handler := func(label string) Handler {
		return Func(func() { invoked = append(invoked, label) })
	}
	root := MustMenu("Root",
		MustMenu("Fruits",
			NewAction("Apple", handler("Apple")),
			NewAction("Banana", handler("Banana")),
		),
		NewAction("Exit").ExitAfter(),
	)

	script := []keys.Key{keys.Printable('F'), keys.Of(keys.KindEnter)}
	script = append(script, typed("ban")...)
	script = append(script, keys.Of(keys.KindEnter))
	script = append(script, keys.Of(keys.KindBack), keys.Of(keys.KindBack))

	display := &frameLog{}
	src := &keyScript{keys: script}
	s := session.New(src, display, match.Substring{})
	if err := NewNavigator(s).Run(root); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(invoked) != 1 || invoked[0] != "Banana" {
		t.Fatalf("expected only Banana invoked, got %v", invoked)
	}

	var filtered *render.Frame
	for i := range display.frames {
		if display.frames[i].Query == "ban" {
			filtered = &display.frames[i]
		}
	}
	if filtered == nil {
		t.Fatal("no frame rendered for query ban")
	}
	if len(filtered.Candidates) != 1 || filtered.Candidates[0] != "Banana" {
		t.Fatalf("expected only Banana visible, got %v", filtered.Candidates)
	}
	if filtered.Title != "Root → Fruits » " {
		t.Fatalf("unexpected title %q", filtered.Title)
	}
}

// Package ui contains a Bubble Tea driver for selection sessions. It is an
// alternative to the blocking raw-terminal loop in package session and shares
// its state machine, so both drivers produce identical outcomes for the same
// keys.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry keyed by message type.
//   - Key messages are translated into keys.Key values (input.go) and applied
//     to the underlying session.State. A terminal outcome stores the result
//     and quits the program.
//   - View renders the state's frame through render.Lines with the query
//     caret drawn by a bubbles cursor in static mode.
//
// Selector runs one tea.Program per selection and satisfies
// session.Selector, so the menu navigator can use either driver.
package ui

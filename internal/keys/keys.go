// Package keys turns raw terminal input into logical key events.
//
// Arrow keys arrive as the three units ESC [ X. The decoder swallows ESC and
// '[' as a compose state and interprets the unit that follows a '[' as an
// arrow. There is no timeout, so a lone ESC stays pending until the next unit.
package keys

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Kind identifies a logical key.
type Kind int

const (
	KindPrintable Kind = iota
	KindEnter
	KindTab
	KindUp
	KindDown
	KindRight
	KindBack
	KindBackspace
	KindInterrupt
)

var kindNames = map[Kind]string{
	KindPrintable: "printable",
	KindEnter:     "enter",
	KindTab:       "tab",
	KindUp:        "up",
	KindDown:      "down",
	KindRight:     "right",
	KindBack:      "back",
	KindBackspace: "backspace",
	KindInterrupt: "interrupt",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Key is a decoded key event. Rune is only meaningful for KindPrintable.
type Key struct {
	Kind Kind
	Rune rune
}

func (k Key) String() string {
	if k.Kind == KindPrintable {
		return fmt.Sprintf("printable(%q)", k.Rune)
	}
	return k.Kind.String()
}

// Printable builds a printable key for r.
func Printable(r rune) Key {
	return Key{Kind: KindPrintable, Rune: r}
}

// Of builds a non-printable key of the given kind.
func Of(kind Kind) Key {
	return Key{Kind: kind}
}

const (
	esc       = '\x1b'
	ctrlC     = '\x03'
	composeCh = '['
)

const allowedPunctuation = " ,.;:-_´áéíóúñ"

// IsPrintable reports whether r belongs to the set of characters that extend
// the query.
func IsPrintable(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(allowedPunctuation, r)
}

// Decode interprets cur given the previous raw unit. It returns false when cur
// is swallowed as part of a compose sequence.
func Decode(prev, cur rune) (Key, bool) {
	switch cur {
	case '\r', '\n':
		return Of(KindEnter), true
	case '\t':
		return Of(KindTab), true
	}
	if prev == composeCh {
		switch cur {
		case 'A':
			return Of(KindUp), true
		case 'B':
			return Of(KindDown), true
		case 'C':
			return Of(KindRight), true
		case 'D':
			return Of(KindBack), true
		}
	}
	if cur == ctrlC {
		return Of(KindInterrupt), true
	}
	if IsPrintable(cur) {
		return Printable(cur), true
	}
	if cur == esc || cur == composeCh {
		return Key{}, false
	}
	return Of(KindBackspace), true
}

// Decoder reads runes from an input device and yields logical keys.
type Decoder struct {
	r    io.RuneReader
	prev rune
}

// NewDecoder wraps r. Readers that already implement io.RuneReader are used
// directly so no input is buffered away from them.
func NewDecoder(r io.Reader) *Decoder {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Decoder{r: rr}
}

// Next blocks until a complete logical key has been read.
func (d *Decoder) Next() (Key, error) {
	for {
		cur, _, err := d.r.ReadRune()
		if err != nil {
			return Key{}, err
		}
		prev := d.prev
		d.prev = cur
		if key, ok := Decode(prev, cur); ok {
			return key, nil
		}
	}
}

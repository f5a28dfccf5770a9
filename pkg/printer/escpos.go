package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
	FontTall   = 0x01 // double height only
)

// Document accumulates an ESC/POS byte stream. Width is the paper width in
// characters: 32 for 58mm paper, 48 for 80mm.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized document for the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// Feed advances the paper n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Align sets text alignment for subsequent lines.
func (d *Document) Align(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// Bold toggles emphasized text.
func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// Size sets the character size.
func (d *Document) Size(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Line writes a line of text.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// Linef writes a formatted line of text.
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Rule prints a full-width rule of the given character.
func (d *Document) Rule(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(lf)
	return d
}

// Pair prints a left-aligned label and a right-aligned value on one line.
func (d *Document) Pair(label, value string) *Document {
	pad := d.width - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(label)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(lf)
	return d
}

// Item prints a receipt line: "2x Hot latte" with a right-aligned total.
func (d *Document) Item(qty int, name, total string) *Document {
	return d.Pair(fmt.Sprintf("%dx %s", qty, name), total)
}

// Cut sends the full paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

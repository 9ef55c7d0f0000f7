/*
Copyright 2024 Tim St. Pierre
Text output
*/
package lcm1602

import (
	"context"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The character ROM only agrees with ASCII between 0x20 and 0x7e. Accents
// are stripped, other characters outside that range are shown as '?' and
// control characters are dropped.
func foldASCII() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

func displayBytes(r rune) []byte {
	if r >= 0x20 && r <= 0x7e {
		return []byte{byte(r)}
	}
	if r < 0x20 || r == 0x7f {
		return nil
	}
	folded, _, err := transform.String(foldASCII(), string(r))
	if err != nil || folded == "" {
		return []byte{'?'}
	}
	out := make([]byte, 0, len(folded))
	for _, c := range folded {
		if c >= 0x20 && c <= 0x7e {
			out = append(out, byte(c))
		} else {
			out = append(out, '?')
		}
	}
	return out
}

// Write prints p as UTF-8 text at the cursor. n counts the input bytes
// whose characters reached the display.
func (d *Dev) Write(p []byte) (int, error) {
	return d.WriteContext(context.Background(), p)
}

// WriteString prints s at the cursor, see Write.
func (d *Dev) WriteString(s string) (int, error) {
	return d.WriteStringContext(context.Background(), s)
}

// WriteBytes sends p to DDRAM untouched, for the character ROM codes above
// 0x7f.
func (d *Dev) WriteBytes(p []byte) (int, error) {
	return d.WriteBytesContext(context.Background(), p)
}

func (d *Dev) WriteContext(ctx context.Context, p []byte) (int, error) {
	return d.WriteStringContext(ctx, string(p))
}

func (d *Dev) WriteStringContext(ctx context.Context, s string) (int, error) {
	if !d.ready {
		return 0, ErrNotReady
	}
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		for _, c := range displayBytes(r) {
			if err := d.check(d.writeChar(ctx, c)); err != nil {
				return n, err
			}
		}
		n += size
		s = s[size:]
	}
	return n, nil
}

func (d *Dev) WriteBytesContext(ctx context.Context, p []byte) (int, error) {
	if !d.ready {
		return 0, ErrNotReady
	}
	for i, c := range p {
		if err := d.check(d.writeChar(ctx, c)); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (d *Dev) writeChar(ctx context.Context, c byte) error {
	if err := d.sendByte(ctx, c, true); err != nil {
		return err
	}
	return d.clk.Sleep(ctx, d.opts.CharDelay)
}

var (
	_ io.Writer       = &Dev{}
	_ io.StringWriter = &Dev{}
)

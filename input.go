package pane

import (
	"bufio"
	"io"
)

// KeyKind classifies a decoded key press.
type KeyKind int

const (
	KeyRune KeyKind = iota // printable rune in Key.Rune
	KeyCtrl                // control chord; Key.Rune holds the letter
	KeyEnter
	KeyTab
	KeyShiftTab
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Key is one decoded key press.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Runes builds a KeyRune key.
func Runes(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Ctrl builds a control-chord key for the given letter.
func Ctrl(r rune) Key { return Key{Kind: KeyCtrl, Rune: r} }

// KeyReader decodes raw-mode terminal input into keys.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps an input stream (normally os.Stdin in raw mode).
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks for the next key press. Unrecognized escape
// sequences are swallowed and reported as a bare Esc.
func (kr *KeyReader) ReadKey() (Key, error) {
	b, err := kr.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 0x1b:
		return kr.readEscape()
	case '\t':
		return Key{Kind: KeyTab}, nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	}

	if b < 0x20 {
		// remaining C0 controls map to Ctrl-<letter>
		return Key{Kind: KeyCtrl, Rune: rune('a' + b - 1)}, nil
	}
	if b < 0x80 {
		return Key{Kind: KeyRune, Rune: rune(b)}, nil
	}

	// multi-byte UTF-8
	if err := kr.r.UnreadByte(); err != nil {
		return Key{}, err
	}
	r, _, err := kr.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Key{Kind: KeyRune, Rune: r}, nil
}

// readEscape decodes the remainder of an escape sequence. An ESC with
// nothing buffered behind it is a bare Esc press.
func (kr *KeyReader) readEscape() (Key, error) {
	if kr.r.Buffered() == 0 {
		return Key{Kind: KeyEsc}, nil
	}
	b, err := kr.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != '[' && b != 'O' {
		// Alt-modified key; report the plain key.
		if err := kr.r.UnreadByte(); err != nil {
			return Key{}, err
		}
		return kr.ReadKey()
	}

	// CSI: parameter bytes then a final byte in '@'..'~'.
	var params []byte
	for {
		c, err := kr.r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if c >= '@' && c <= '~' {
			return decodeCSI(c, params), nil
		}
		params = append(params, c)
		if len(params) > 16 {
			return Key{Kind: KeyEsc}, nil
		}
	}
}

func decodeCSI(final byte, params []byte) Key {
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	case 'C':
		return Key{Kind: KeyRight}
	case 'D':
		return Key{Kind: KeyLeft}
	case 'Z':
		return Key{Kind: KeyShiftTab}
	case 'H':
		return Key{Kind: KeyHome}
	case 'F':
		return Key{Kind: KeyEnd}
	case '~':
		switch string(params) {
		case "1", "7":
			return Key{Kind: KeyHome}
		case "3":
			return Key{Kind: KeyDelete}
		case "4", "8":
			return Key{Kind: KeyEnd}
		}
	}
	return Key{Kind: KeyEsc}
}

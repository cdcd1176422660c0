package prompts

import (
	"strconv"
	"unicode"
)

// KeyCode identifies a normalized key.
type KeyCode int

// Key codes produced by the key reader.
const (
	KeyUnknown KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyCtrlC
)

var keyCodeNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyChar:      "Char",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyEsc:       "Esc",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyCtrlC:     "Ctrl+C",
}

func (c KeyCode) String() string {
	if name, ok := keyCodeNames[c]; ok {
		return name
	}
	return "KeyCode(" + strconv.Itoa(int(c)) + ")"
}

// Key is a single key event. Rune is only meaningful for KeyChar.
type Key struct {
	Code KeyCode
	Rune rune
}

// CharKey returns the key event for a printable character.
func CharKey(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

func (k Key) String() string {
	if k.Code == KeyChar {
		return strconv.QuoteRune(k.Rune)
	}
	return k.Code.String()
}

// KeyMap translates raw input into key codes.
type KeyMap struct {
	bindings  map[rune]KeyCode
	sequences map[string]KeyCode
}

// NewDefaultKeyMap creates the default key bindings.
//
// Control characters cover Enter, Backspace, Tab and Ctrl+C; escape sequences
// cover the arrow keys, Home/End, Insert/Delete, PageUp/PageDown and Shift+Tab
// in both their CSI and SS3 forms.
//
// Example:
//
//	keyMap := prompts.NewDefaultKeyMap()
//	// Treat Ctrl+D like Esc
//	keyMap.Bind('\x04', prompts.KeyEsc)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyCode),
		sequences: make(map[string]KeyCode),
	}

	km.bindings['\r'] = KeyEnter
	km.bindings['\n'] = KeyEnter
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace
	km.bindings['\t'] = KeyTab
	km.bindings['\x03'] = KeyCtrlC

	// Escape sequences, without the leading ESC
	km.sequences["[A"] = KeyUp
	km.sequences["[B"] = KeyDown
	km.sequences["[C"] = KeyRight
	km.sequences["[D"] = KeyLeft
	km.sequences["[H"] = KeyHome
	km.sequences["[F"] = KeyEnd
	km.sequences["OA"] = KeyUp
	km.sequences["OB"] = KeyDown
	km.sequences["OC"] = KeyRight
	km.sequences["OD"] = KeyLeft
	km.sequences["OH"] = KeyHome
	km.sequences["OF"] = KeyEnd
	km.sequences["[1~"] = KeyHome
	km.sequences["[2~"] = KeyInsert
	km.sequences["[3~"] = KeyDelete
	km.sequences["[4~"] = KeyEnd
	km.sequences["[5~"] = KeyPageUp
	km.sequences["[6~"] = KeyPageDown
	km.sequences["[Z"] = KeyBackTab

	return km
}

// Bind adds or updates the key code of a single character.
func (km *KeyMap) Bind(r rune, code KeyCode) {
	km.bindings[r] = code
}

// BindSequence adds or updates the key code of an escape sequence. The
// sequence should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, code KeyCode) {
	km.sequences[seq] = code
}

func (km *KeyMap) lookup(r rune) (KeyCode, bool) {
	if km == nil || km.bindings == nil {
		return KeyUnknown, false
	}
	code, ok := km.bindings[r]
	return code, ok
}

func (km *KeyMap) lookupSequence(seq string) (KeyCode, bool) {
	if km == nil || km.sequences == nil {
		return KeyUnknown, false
	}
	code, ok := km.sequences[seq]
	return code, ok
}

// maxEscapeSequenceLength bounds how far an unterminated sequence is read.
const maxEscapeSequenceLength = 10

// runeSource is the part of the terminal the key reader needs.
type runeSource interface {
	ReadRune() (rune, int, error)
	// Buffered reports whether more input is available without blocking.
	Buffered() bool
}

// keyReader decodes terminal input into Key events.
type keyReader struct {
	source  runeSource
	keyMap  *KeyMap
	pending []rune
}

func newKeyReader(source runeSource, keyMap *KeyMap) *keyReader {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &keyReader{source: source, keyMap: keyMap}
}

// ReadKey blocks until one key event is decoded.
func (k *keyReader) ReadKey() (Key, error) {
	r, err := k.readRune()
	if err != nil {
		return Key{}, err
	}
	if r == '\x1b' {
		return k.readEscape()
	}
	if code, ok := k.keyMap.lookup(r); ok {
		return Key{Code: code}, nil
	}
	if unicode.IsPrint(r) {
		return CharKey(r), nil
	}
	return Key{Code: KeyUnknown, Rune: r}, nil
}

// readEscape decodes the input following ESC. A lone ESC, one with nothing
// queued behind it, or one followed by something other than a CSI or SS3
// introducer is the Esc key itself.
func (k *keyReader) readEscape() (Key, error) {
	if !k.buffered() {
		return Key{Code: KeyEsc}, nil
	}
	r, err := k.readRune()
	if err != nil {
		return Key{}, err
	}
	if r != '[' && r != 'O' {
		k.pending = append(k.pending, r)
		return Key{Code: KeyEsc}, nil
	}

	seq := []rune{r}
	for range maxEscapeSequenceLength {
		r, err := k.readRune()
		if err != nil {
			return Key{}, err
		}
		seq = append(seq, r)
		if isFinalByte(r) {
			break
		}
	}

	if code, ok := k.keyMap.lookupSequence(string(seq)); ok {
		return Key{Code: code}, nil
	}
	return Key{Code: KeyUnknown}, nil
}

// isFinalByte reports whether r terminates a CSI or SS3 sequence.
func isFinalByte(r rune) bool {
	return r >= 0x40 && r <= 0x7e
}

func (k *keyReader) buffered() bool {
	return len(k.pending) > 0 || k.source.Buffered()
}

func (k *keyReader) readRune() (rune, error) {
	if len(k.pending) > 0 {
		r := k.pending[0]
		k.pending = k.pending[1:]
		return r, nil
	}
	r, _, err := k.source.ReadRune()
	return r, err
}

package buffer

// Key is one input event: a byte value for printable characters and control
// codes, or one of the named motion keys.
type Key int

const (
	KeyEnter     Key = '\r'
	KeyEscape    Key = '\x1b'
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
)

// Ctrl returns the key produced by c with the control modifier.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	return k >= KeyArrowLeft && k <= KeyArrowDown
}

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7f
}

// PromptFunc is invoked by a prompt after every keystroke with the input
// collected so far and the key just pressed.
type PromptFunc func(input string, k Key)

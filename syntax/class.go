package syntax

// Class tags one byte of a row's rendered text for display styling.
type Class uint8

const (
	Normal Class = iota
	Comment
	BlockComment
	String
	Number
	Match
	Keyword1
	Keyword2
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Comment:
		return "comment"
	case BlockComment:
		return "block_comment"
	case String:
		return "string"
	case Number:
		return "number"
	case Match:
		return "match"
	case Keyword1:
		return "keyword1"
	case Keyword2:
		return "keyword2"
	default:
		return "unknown"
	}
}

// IsComment reports whether c is one of the comment classes.
func (c Class) IsComment() bool {
	return c == Comment || c == BlockComment
}

// Classes lists every class in display order.
func Classes() []Class {
	return []Class{Normal, Comment, BlockComment, String, Number, Match, Keyword1, Keyword2}
}

// ParseClass is the inverse of Class.String.
func ParseClass(name string) (Class, bool) {
	for _, c := range Classes() {
		if c.String() == name {
			return c, true
		}
	}
	return Normal, false
}

package engine

// KeyKind classifies a decoded keystroke.
type KeyKind int

const (
	KeyIgnored KeyKind = iota
	KeyChar
	KeyBackspace
	KeyRestart
	KeyQuit
)

// Key is one decoded keystroke. Rune is set for KeyChar only.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char returns a printable-rune key.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Action tells the caller whether to keep reading keys.
type Action int

const (
	ActionContinue Action = iota
	ActionQuit
)

const (
	restartShortcut = "ctrl-r"
	quitShortcut    = "ctrl-q"
)

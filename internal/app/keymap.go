package app

// Key binding constants used in handleKey.
const (
	KeyQuit       = "q"
	KeyCtrlC      = "ctrl+c"
	KeyHome       = "esc"
	KeyAccount    = "f2"
	KeyParental   = "f3"
	KeyEnter      = "enter"
	KeyLeft       = "left"
	KeyRight      = "right"
	KeyH          = "h"
	KeyL          = "l"
	KeyTab        = "tab"
	KeyRecord     = "ctrl+r"
	KeySpeak      = "ctrl+t"
	KeyContinue   = "c"
	KeyActivity   = "a"
	KeyDone       = "d"
	KeyChatPlay   = "ctrl+g"
	KeyChatFinish = "ctrl+d"
)

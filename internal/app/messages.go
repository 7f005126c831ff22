package app

// LoadingCompleteMsg is sent once the loading bar has been full for a moment.
type LoadingCompleteMsg struct{}

package tui

// Export internals for testing.
var (
	Clip          = clip
	OverlayAt     = overlayAt
	CenterOverlay = centerOverlay
)

// IdleMsg is the message that drains the idle queue.
type IdleMsg = idleMsg

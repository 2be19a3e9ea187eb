package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconArrow   = "\uf061" // arrow right
	IconClock   = "\uf017" // clock
	IconPlay    = "\uf04b" // play
	IconStop    = "\uf04d" // stop
	IconFlip    = "\uf0ec" // exchange
	IconComment = "\uf075" // comment
)

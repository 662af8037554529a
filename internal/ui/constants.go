package ui

// Icons
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	ThumbnailMinHeight float32 = 180
	FormPadding        float32 = 10
	MobileFormPadding  float32 = 20
)

// Window defaults
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 780
)

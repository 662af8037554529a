package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is a light, compact theme with blue primary actions and green
// success accents.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Palette
var (
	colorPrimary    = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	colorSuccess    = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorError      = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorWarning    = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	colorLightBG    = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	colorDarkBG     = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	colorLightText  = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	colorDarkText   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorWhiteInput = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNameBackground:
		if dark {
			return colorDarkBG
		}
		return colorLightBG
	case theme.ColorNameInputBackground:
		if !dark {
			return colorWhiteInput
		}
	case theme.ColorNameForeground:
		if dark {
			return colorDarkText
		}
		return colorLightText
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// isPortrait returns true if the device is held upright
func isPortrait() bool {
	switch fyne.CurrentDevice().Orientation() {
	case fyne.OrientationVertical, fyne.OrientationVerticalUpsideDown:
		return true
	}
	return false
}

// formPadding returns the outer padding of the form
func formPadding() float32 {
	if isMobileDevice() {
		return MobileFormPadding
	}
	return FormPadding
}

// adaptiveRow places objects side by side, or stacks them on a portrait
// mobile screen.
func adaptiveRow(objects ...fyne.CanvasObject) *fyne.Container {
	if isMobileDevice() && isPortrait() {
		return container.NewVBox(objects...)
	}
	return container.NewAdaptiveGrid(len(objects), objects...)
}

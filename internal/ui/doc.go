package ui

// Package ui contains the Fyne-based desktop form of the application.
// It renders controller state, forwards user input to the controller, and
// localizes every visible string via Localization.

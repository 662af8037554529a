package platform

// Package platform contains OS integration and external tooling glue:
// default save location, filesystem helpers, free space probing, playlist
// resolution and opening files in the system file manager.

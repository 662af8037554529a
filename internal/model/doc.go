package model

// Package model defines the data structures shared across the app: video
// metadata as reported by the extractor, the format options offered to the
// user, progress events and operation status enums. Values are ephemeral and
// rebuilt on every fetch; nothing here is persisted.

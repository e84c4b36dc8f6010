package model

// Package model defines domain data structures used across the app: bookmarks,
// browsing history, the persisted document that holds both, and the records
// kept for accepted downloads.

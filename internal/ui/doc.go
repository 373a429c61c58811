// Package ui is the interactive terminal view of a wellness session.
//
// The view never edits the task list itself; it calls the session's
// mutators and re-reads Tasks. Everything it remembers about a row (the
// cursor, whether the row is expanded) is keyed by task ID so that closing a
// task cannot move that state onto the row that slides into its place.
package ui

// Package ui implements the interactive crate browser using bubbletea's Elm architecture.
//
// The browser presents the crate contents as a scrollable list. Selection and
// navigation use vim-style bindings (j/k, up/down); pressing d removes the
// selected record through the owning [collection.Crate], so the on-screen list
// and the crate never diverge. Contextual help is rendered via
// charmbracelet/bubbles/help.
package ui

// Package tui runs the form validator as an interactive terminal session.
// Prompts go through a PromptDriver (survey by default) so sessions can be
// scripted in tests; validation feedback is written by terminal presenters.
package tui

// Package styles holds the colours and classes the presenters apply for the
// error, success and confirmation states, and resolves them from go-theme
// manifests.
package styles

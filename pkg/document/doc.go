// Package document is a small mutable HTML element tree. It parses pages and
// fragments with golang.org/x/net/html, supports #id/.class/tag queries,
// inline style and class manipulation, and renders back to markup.
package document

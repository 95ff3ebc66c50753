// Package dom renders validator state into a document.Document the same way
// the browser widget mutates its page: error paragraphs with the text-danger
// class under the field container, inline border-color/box-shadow on the
// container's .form-control element, the disabled attribute on the submit
// button and a confirmation paragraph under the button's parent.
//
// Bind locates the elements once and injects them into a FormValidator.
package dom

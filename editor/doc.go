// Package editor provides the Bubble Tea model of the eru text editor,
// backed by the buffer package.
//
// The package is responsible for key handling, the search and save-as
// prompts, file load and save, status messages, and rendering the visible
// rows with their highlight classes.
package editor

// Package syntax holds the language profiles used by the highlighter.
//
// A Profile describes how a file type is tokenized: which filenames it
// applies to, its comment delimiters, its keywords and which optional
// highlight passes (numbers, strings) are enabled. Profiles are immutable
// once a Registry is built and may be shared by any number of documents.
package syntax

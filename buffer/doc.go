// Package buffer implements the document engine: rows of raw bytes with
// their tab-expanded render form and highlight classes, the edit and motion
// operations on a Document, snapshot undo/redo history and incremental
// search.
//
// Coordinates are 0-based. A Point is (Row, Col) in raw bytes; render
// columns are only ever derived from raw columns through tab expansion.
package buffer

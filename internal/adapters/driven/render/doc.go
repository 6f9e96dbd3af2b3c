// Package render groups the driven.Renderer implementations, one
// subpackage per export format:
//
//   - text: BOM-prefixed plain text, with a parser for re-importing exports
//   - pdf: paginated A4 documents
package render

// Package memory provides in-memory implementations of driven port interfaces.
// Nothing held here survives the process. The config store backs tests and
// the export history covers a single session.
package memory

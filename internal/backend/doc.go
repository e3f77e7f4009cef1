// Package backend adapts a tcell terminal into the parser's key-event
// source. Raw tcell events are validated and translated into key.Event at
// this boundary; the matching core never sees tcell types.
package backend

// Package prompt implements deadline-bounded line acquisition from an
// input stream.
//
// The core primitive is Gate.AwaitLine, which writes a prompt marker,
// starts a single reader goroutine, and waits for whichever resolves
// first: the read or the deadline. Losing reads are abandoned and their
// results discarded; every call starts an independent fresh read.
package prompt

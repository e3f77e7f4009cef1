// Package input turns a stream of key-press events into command dispatches.
//
// The Parser is the core state machine. Each incoming event is normalized
// and checked against the special-binding table first; a match dispatches
// immediately. Otherwise the event's text is folded into the accumulated
// chain keystring and matched against the chain table, which yields one of
// four outcomes:
//
//   - no binding equals or extends the text: the chain is abandoned
//   - the text is a strict prefix of a longer binding: keep waiting
//   - the text equals a binding with no longer alternative: fire immediately
//   - the text equals a binding that is also a prefix of a longer one:
//     ambiguous, and a timer resolves in favor of the shorter command
//     unless a disambiguating key arrives first
//
// Chains may carry a leading numeric repeat count ("42ba" fires "ba" with
// count 42) when the parser is constructed with count support.
//
// # Concurrency
//
// Events are processed to completion in arrival order under the parser's
// lock. The only asynchronous element is the ambiguity timer; its callback
// takes the same lock and a generation counter guarantees that a deadline
// racing a cancelling key event can never dispatch a stale snapshot.
//
// # Usage
//
//	parser := input.New(source, executor, input.Config{
//	    SupportsCount:  true,
//	    SupportsChains: true,
//	})
//	if err := parser.ReadConfig("normal"); err != nil {
//	    return err
//	}
//
//	for event := range keyEvents {
//	    parser.HandleKey(event)
//	}
package input

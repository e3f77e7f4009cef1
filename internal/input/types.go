package input

// Kind identifies which binding set produced a dispatch.
type Kind int

const (
	// KindSpecial marks a dispatch from an exact modifier-key binding.
	KindSpecial Kind = iota

	// KindChain marks a dispatch from a multi-key chain binding.
	KindChain
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSpecial:
		return "special"
	case KindChain:
		return "chain"
	default:
		return "unknown"
	}
}

// Dispatch is one command invocation produced by the parser.
type Dispatch struct {
	// Command is the bound command string.
	Command string

	// Kind reports which binding set matched.
	Kind Kind

	// Count is the numeric repeat-count prefix. Valid only when HasCount
	// is true; an explicit count of zero is distinct from no count.
	Count int

	// HasCount reports whether a count prefix was typed.
	HasCount bool
}

// Executor receives dispatched commands.
type Executor interface {
	Execute(d Dispatch)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(Dispatch)

// Execute implements Executor.
func (f ExecutorFunc) Execute(d Dispatch) {
	f(d)
}

package input

import (
	"fmt"
	"sync"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// Config configures a Parser. The capability flags are fixed for the
// parser's lifetime.
type Config struct {
	// SupportsCount enables the numeric repeat-count prefix on chains.
	SupportsCount bool

	// SupportsChains enables multi-key chain matching. When false only
	// special bindings can ever dispatch.
	SupportsChains bool

	// Timer overrides the wall-clock ambiguity timer. Nil selects the
	// default; tests inject a manual timer for deterministic firing.
	Timer Timer

	// OnPending, when set, is invoked with the accumulated keystring
	// whenever it changes (including resets to ""). Useful for status
	// line display.
	OnPending func(keystring string)
}

// Parser is the key-sequence matching state machine. It owns one binding
// table pair loaded from a named configuration section and a single mutable
// chain state (keystring plus derived count), which are reset together on
// every dispatch, abandonment, or timeout.
type Parser struct {
	mu sync.Mutex

	supportsCount  bool
	supportsChains bool

	source    config.Source
	executor  Executor
	metrics   *Metrics
	onPending func(string)

	section string
	table   *keymap.Table

	keystring string

	timer      Timer
	timerGen   uint64
	timerArmed bool
}

// New creates a parser reading bindings from source and delivering
// dispatches to executor.
func New(source config.Source, executor Executor, cfg Config) *Parser {
	timer := cfg.Timer
	if timer == nil {
		timer = NewWallTimer()
	}
	return &Parser{
		supportsCount:  cfg.SupportsCount,
		supportsChains: cfg.SupportsChains,
		source:         source,
		executor:       executor,
		metrics:        &Metrics{},
		onPending:      cfg.OnPending,
		timer:          timer,
	}
}

// ReadConfig loads the named section's bindings, replacing both tables
// entirely. An empty name reloads the previously loaded section; if none
// was ever loaded that is an error. On any error the current tables remain
// untouched. When a reload replaces previously established tables the chain
// state is reset, so a partial chain can never resolve against a table it
// was not typed for.
func (p *Parser) ReadConfig(section string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if section == "" {
		if p.section == "" {
			return config.ErrNoSection
		}
		section = p.section
	}

	entries, err := p.source.Section(section)
	if err != nil {
		return fmt.Errorf("reading bindings for section %q: %w", section, err)
	}

	table := keymap.New()
	for _, entry := range entries {
		table.Add(entry.Keys, entry.Command)
	}

	if p.table != nil {
		p.stopTimer()
		p.setKeystring("")
	}
	p.section = section
	p.table = table
	return nil
}

// HandleKey processes one key-press event to completion.
func (p *Parser) HandleKey(e key.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.metrics.keyEvents.Add(1)

	if p.handleSpecial(e) {
		return
	}

	if e.Modifiers.HasNonShift() {
		// Unmatched modifier combination: noise. State is left
		// untouched, including a pending ambiguity timer.
		p.metrics.ignoredEvents.Add(1)
		return
	}

	if !p.supportsChains {
		p.metrics.ignoredEvents.Add(1)
		return
	}

	p.handleChain(e)
}

// handleSpecial matches the event's keystring against the special table and
// reports whether it dispatched. A hit clears any in-progress chain. Every
// event is offered here first: Shift-only bindings like Shift+Escape live
// in the special table even though Shift alone never makes a key a chord on
// the chain path.
func (p *Parser) handleSpecial(e key.Event) bool {
	if p.table == nil {
		return false
	}

	command, ok := p.table.Special(e.KeyString())
	if !ok {
		return false
	}

	p.dispatch(Dispatch{Command: command, Kind: KindSpecial})
	return true
}

// handleChain folds the event's text into the keystring and acts on the
// resulting match classification.
func (p *Parser) handleChain(e key.Event) {
	if !e.IsText() {
		// Modifier-only or non-printable press: neither appended nor
		// resetting.
		p.metrics.ignoredEvents.Add(1)
		return
	}

	// The keystring is about to change; a pending timer would be timing
	// out on state that no longer exists.
	p.stopTimer()
	p.setKeystring(p.keystring + e.Text)

	count, remainder, hasCount := SplitCount(p.keystring, p.supportsCount)

	if p.table == nil {
		p.abandon()
		return
	}

	result, command := p.table.MatchChain(remainder)
	switch result {
	case keymap.MatchNone:
		p.abandon()
	case keymap.MatchDefinitive:
		p.dispatch(Dispatch{Command: command, Kind: KindChain, Count: count, HasCount: hasCount})
	case keymap.MatchAmbiguous:
		p.armTimer(Dispatch{Command: command, Kind: KindChain, Count: count, HasCount: hasCount})
	case keymap.MatchPartial:
		// Keep accumulating.
	}
}

// dispatch fires a command and resets the chain state.
func (p *Parser) dispatch(d Dispatch) {
	p.stopTimer()
	p.setKeystring("")

	switch d.Kind {
	case KindSpecial:
		p.metrics.specialDispatches.Add(1)
	case KindChain:
		p.metrics.chainDispatches.Add(1)
	}

	if p.executor != nil {
		p.executor.Execute(d)
	}
}

// abandon resets the chain state without dispatching.
func (p *Parser) abandon() {
	p.metrics.abandonedChains.Add(1)
	p.stopTimer()
	p.setKeystring("")
}

// armTimer starts the ambiguity timer against a snapshot of the current
// match. Any previously armed deadline is replaced. A zero timeout disables
// automatic disambiguation entirely.
func (p *Parser) armTimer(d Dispatch) {
	timeout := p.source.Timeout()
	if timeout <= 0 {
		return
	}

	p.timerGen++
	p.timerArmed = true
	gen := p.timerGen
	p.timer.Start(timeout, func() {
		p.timerFired(gen, d)
	})
}

// timerFired resolves an ambiguous match in favor of the snapshotted
// shorter command. The generation guard rejects callbacks whose deadline
// raced a cancelling key event: dispatching then would act on state the
// live parser has already moved past.
func (p *Parser) timerFired(gen uint64, d Dispatch) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.timerArmed || gen != p.timerGen {
		p.metrics.staleTimerFires.Add(1)
		return
	}
	p.timerArmed = false

	p.metrics.ambiguousTimeouts.Add(1)
	p.dispatch(d)
}

// stopTimer cancels a pending ambiguity deadline.
func (p *Parser) stopTimer() {
	p.timerArmed = false
	p.timer.Stop()
}

// setKeystring updates the accumulated keystring and notifies the pending
// hook on change.
func (p *Parser) setKeystring(s string) {
	if s == p.keystring {
		return
	}
	p.keystring = s
	if p.onPending != nil {
		p.onPending(s)
	}
}

// Pending returns the accumulated chain keystring, empty when idle.
func (p *Parser) Pending() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.keystring
}

// Section returns the name of the currently loaded section, empty before
// the first successful ReadConfig.
func (p *Parser) Section() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.section
}

// Metrics returns the parser's activity counters.
func (p *Parser) Metrics() *Metrics {
	return p.metrics
}

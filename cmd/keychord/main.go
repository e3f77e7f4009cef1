// Package main is the entry point for the keychord demo.
//
// It wires a tcell terminal into the key-sequence parser and renders the
// pending keystring, dispatched commands, and parser counters live. Type
// bound sequences to see them resolve; q or Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dshills/keychord/internal/backend"
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/input/key"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	section    string
	timeout    time.Duration
	noCount    bool
	scriptPath string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	source := demoSource(opts.timeout)

	logCh := make(chan string, 64)
	quit := make(chan struct{})

	sink, cleanup, err := buildSink(opts, logCh, quit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	parser := input.New(source, sink, input.Config{
		SupportsCount:  !opts.noCount,
		SupportsChains: true,
	})
	if err := parser.ReadConfig(opts.section); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	keys := make(chan key.Event)
	go func() {
		defer close(keys)
		for {
			ev, ok := term.PollKey()
			if !ok {
				return
			}
			keys <- ev
		}
	}()

	// The ambiguity timer fires off the key-event path, so redraw on a
	// tick as well to pick up its dispatches.
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	var log []string
	for {
		draw(term, parser, log)
		select {
		case <-quit:
			return 0
		case line := <-logCh:
			log = append(log, line)
			if len(log) > 10 {
				log = log[len(log)-10:]
			}
		case ev, ok := <-keys:
			if !ok {
				return 0
			}
			parser.HandleKey(ev)
		case <-tick.C:
		}
	}
}

// buildSink assembles the dispatch pipeline: every dispatch is logged for
// the display, the quit command stops the loop, and when a script was given
// each dispatch is also forwarded to its Lua handlers.
func buildSink(opts options, logCh chan<- string, quit chan struct{}) (input.Executor, func(), error) {
	onErr := func(err error) { post(logCh, err.Error()) }

	registry := command.NewRegistry()
	echo := func(d input.Dispatch) error {
		if d.HasCount {
			post(logCh, fmt.Sprintf("%-12s count=%d (%s)", d.Command, d.Count, d.Kind))
		} else {
			post(logCh, fmt.Sprintf("%-12s (%s)", d.Command, d.Kind))
		}
		return nil
	}
	for _, name := range []string{"top", "bottom", "delete-char", "delete-line", "save", "open"} {
		if err := registry.Register(name, echo); err != nil {
			return nil, nil, err
		}
	}
	var quitOnce sync.Once
	if err := registry.Register("quit", func(input.Dispatch) error {
		quitOnce.Do(func() { close(quit) })
		return nil
	}); err != nil {
		return nil, nil, err
	}

	if opts.scriptPath == "" {
		return registry.Executor(onErr), func() {}, nil
	}

	script, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading command script: %w", err)
	}
	luaExec, err := command.NewLuaExecutor(string(script), onErr)
	if err != nil {
		return nil, nil, err
	}

	registered := registry.Executor(onErr)
	both := input.ExecutorFunc(func(d input.Dispatch) {
		registered.Execute(d)
		luaExec.Execute(d)
	})
	return both, luaExec.Close, nil
}

// post logs a line without ever blocking the dispatch path.
func post(logCh chan<- string, line string) {
	select {
	case logCh <- line:
	default:
	}
}

func demoSource(timeout time.Duration) *config.MapSource {
	source := config.NewMapSource(timeout)
	source.SetSection("normal", []config.Entry{
		{Keys: "gg", Command: "top"},
		{Keys: "G", Command: "bottom"},
		{Keys: "x", Command: "delete-char"},
		{Keys: "d", Command: "delete-char"},
		{Keys: "dd", Command: "delete-line"},
		{Keys: "<Ctrl-s>", Command: "save"},
		{Keys: "<Ctrl-o>", Command: "open"},
		{Keys: "<Ctrl-c>", Command: "quit"},
		{Keys: "q", Command: "quit"},
	})
	return source
}

func draw(term *backend.Terminal, parser *input.Parser, log []string) {
	term.Clear()
	term.DrawText(0, 0, fmt.Sprintf("keychord %s  section: %s", version, parser.Section()))
	term.DrawText(0, 1, "pending: "+parser.Pending())

	m := parser.Metrics().Snapshot()
	term.DrawText(0, 2, fmt.Sprintf(
		"events %d  special %d  chain %d  abandoned %d  timeouts %d  ignored %d",
		m.KeyEvents, m.SpecialDispatches, m.ChainDispatches,
		m.AbandonedChains, m.AmbiguousTimeouts, m.IgnoredEvents,
	))

	for i, line := range log {
		term.DrawText(0, 4+i, line)
	}
	term.DrawText(0, 15, "try: gg  3dd  2x  d (waits, then fires)  <Ctrl-s>  |  q or Ctrl+C to quit")
	term.Show()
}

func parseFlags() options {
	var opts options
	var timeoutMS int
	var showVersion bool

	flag.StringVar(&opts.section, "section", "normal", "Binding section to load")
	flag.IntVar(&timeoutMS, "timeout", 500, "Ambiguous-match timeout in milliseconds (0 disables)")
	flag.BoolVar(&opts.noCount, "no-count", false, "Disable numeric count prefixes")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua command script to also receive dispatches")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keychord - key-sequence matching demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keychord [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keychord %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.timeout = time.Duration(timeoutMS) * time.Millisecond
	return opts
}

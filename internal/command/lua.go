package command

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input"
)

// LuaExecutor routes dispatched commands to same-named global functions in
// a Lua chunk. Each function receives the dispatch kind ("special" or
// "chain") and the count, or nil when no count was typed:
//
//	function ba(kind, count)
//	  move_down(count or 1)
//	end
//
// The Lua state is not goroutine-safe; calls are serialized internally.
type LuaExecutor struct {
	mu    sync.Mutex
	state *lua.LState
	onErr func(error)
}

// NewLuaExecutor compiles and runs a Lua chunk defining command functions.
// Execution errors after construction are passed to onErr (may be nil).
func NewLuaExecutor(script string, onErr func(error)) (*LuaExecutor, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading command script: %w", err)
	}
	return &LuaExecutor{state: state, onErr: onErr}, nil
}

// Execute implements input.Executor.
func (e *LuaExecutor) Execute(d input.Dispatch) {
	if err := e.call(d); err != nil && e.onErr != nil {
		e.onErr(err)
	}
}

// Call runs the command handler and reports its error, for callers that
// dispatch outside a parser.
func (e *LuaExecutor) Call(d input.Dispatch) error {
	return e.call(d)
}

func (e *LuaExecutor) call(d input.Dispatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.state.GetGlobal(d.Command)
	if fn.Type() != lua.LTFunction {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, d.Command)
	}

	count := lua.LValue(lua.LNil)
	if d.HasCount {
		count = lua.LNumber(d.Count)
	}

	err := e.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LString(d.Kind.String()), count)
	if err != nil {
		return fmt.Errorf("running command %q: %w", d.Command, err)
	}
	return nil
}

// Close releases the Lua state. The executor must not be used afterwards.
func (e *LuaExecutor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Close()
}

package command

import (
	"errors"
	"testing"

	"github.com/dshills/keychord/internal/input"
)

const testScript = `
last_kind = nil
last_count = nil

function ba(kind, count)
  last_kind = kind
  last_count = count
end

function boom(kind, count)
  error("deliberate")
end
`

func TestLuaExecutorCall(t *testing.T) {
	exec, err := NewLuaExecutor(testScript, nil)
	if err != nil {
		t.Fatalf("NewLuaExecutor() error = %v", err)
	}
	defer exec.Close()

	d := input.Dispatch{Command: "ba", Kind: input.KindChain, Count: 42, HasCount: true}
	if err := exec.Call(d); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
}

func TestLuaExecutorNilCount(t *testing.T) {
	exec, err := NewLuaExecutor(testScript+`
function check(kind, count)
  if count ~= nil then
    error("expected nil count")
  end
end
`, nil)
	if err != nil {
		t.Fatalf("NewLuaExecutor() error = %v", err)
	}
	defer exec.Close()

	if err := exec.Call(input.Dispatch{Command: "check", Kind: input.KindChain}); err != nil {
		t.Errorf("Call() error = %v, want nil (count omitted)", err)
	}
}

func TestLuaExecutorUnknownCommand(t *testing.T) {
	exec, err := NewLuaExecutor(testScript, nil)
	if err != nil {
		t.Fatalf("NewLuaExecutor() error = %v", err)
	}
	defer exec.Close()

	err = exec.Call(input.Dispatch{Command: "missing"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Call() error = %v, want ErrUnknownCommand", err)
	}
}

func TestLuaExecutorScriptError(t *testing.T) {
	var seen error
	exec, err := NewLuaExecutor(testScript, func(err error) { seen = err })
	if err != nil {
		t.Fatalf("NewLuaExecutor() error = %v", err)
	}
	defer exec.Close()

	exec.Execute(input.Dispatch{Command: "boom"})
	if seen == nil {
		t.Error("onErr not called for failing handler")
	}
}

func TestLuaExecutorBadScript(t *testing.T) {
	if _, err := NewLuaExecutor("this is not lua", nil); err == nil {
		t.Error("NewLuaExecutor() error = nil, want parse error")
	}
}

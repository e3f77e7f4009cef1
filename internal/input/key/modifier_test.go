package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift

	if !m.HasCtrl() {
		t.Error("HasCtrl() = false, want true")
	}
	if !m.HasShift() {
		t.Error("HasShift() = false, want true")
	}
	if m.HasAlt() {
		t.Error("HasAlt() = true, want false")
	}
	if m.HasMeta() {
		t.Error("HasMeta() = true, want false")
	}
}

func TestModifierHasNonShift(t *testing.T) {
	tests := []struct {
		name string
		m    Modifier
		want bool
	}{
		{"none", ModNone, false},
		{"shift only", ModShift, false},
		{"ctrl", ModCtrl, true},
		{"ctrl+shift", ModCtrl | ModShift, true},
		{"alt", ModAlt, true},
		{"meta", ModMeta, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.HasNonShift(); got != tt.want {
				t.Errorf("HasNonShift() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		m    Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModMeta, "Meta"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModMeta | ModCtrl, "Ctrl+Meta"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "Ctrl+Alt+Shift+Meta"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Modifier(%b).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
		ok   bool
	}{
		{"Ctrl", ModCtrl, true},
		{"Control", ModCtrl, true},
		{"Alt", ModAlt, true},
		{"Mod1", ModAlt, true},
		{"Meta", ModMeta, true},
		{"Windows", ModMeta, true},
		{"Mod4", ModMeta, true},
		{"Shift", ModShift, true},
		{"ctrl", ModNone, false},
		{"Hyper", ModNone, false},
		{"", ModNone, false},
	}

	for _, tt := range tests {
		got, ok := ModifierFromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ModifierFromName(%q) = (%v, %v), want (%v, %v)",
				tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModAlt)
	if !m.HasCtrl() || !m.HasAlt() {
		t.Errorf("With() chain = %v, want Ctrl+Alt", m)
	}

	m = m.Without(ModCtrl)
	if m.HasCtrl() {
		t.Error("Without(ModCtrl) still has Ctrl")
	}
	if !m.HasAlt() {
		t.Error("Without(ModCtrl) dropped Alt")
	}
}

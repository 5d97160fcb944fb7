package hop

import (
	"testing"
	"time"
)

func TestDecide(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name  string
		phase Phase
		obs   Observation
		want  Phase
	}{
		{"default below nice", Default{}, Observation{Jumps: 68}, Default{}},
		{"nice at 69", Default{}, Observation{Jumps: 69, Now: 5 * ms}, Nice{EnteredAt: 5 * ms}},
		{"nice latched", Default{NiceShown: true}, Observation{Jumps: 69}, Default{NiceShown: true}},
		{"nice holds", Nice{EnteredAt: 0}, Observation{Jumps: 69, Now: 999 * ms}, Nice{EnteredAt: 0}},
		{"nice expires", Nice{EnteredAt: 0}, Observation{Jumps: 69, Now: 1000 * ms}, Default{NiceShown: true}},
		{"nice with 80 waits", Nice{EnteredAt: 0}, Observation{Jumps: 80, Now: 10 * ms}, Nice{EnteredAt: 0}},
		{"nice expiry then corrupt", Nice{EnteredAt: 0}, Observation{Jumps: 80, Now: 1000 * ms}, CorruptA{EnteredAt: 1000 * ms}},
		{"corrupt at 80", Default{}, Observation{Jumps: 80, Now: 7 * ms}, CorruptA{EnteredAt: 7 * ms}},
		{"corrupt above 80", Default{NiceShown: true}, Observation{Jumps: 200}, CorruptA{}},
		{"dwell not elapsed", CorruptA{EnteredAt: 0}, Observation{Now: 1999 * ms, Angle: 0}, CorruptA{EnteredAt: 0}},
		{"angle far", CorruptA{EnteredAt: 0}, Observation{Now: 3000 * ms, Angle: 90}, CorruptA{EnteredAt: 0}},
		{"angle near below", CorruptA{EnteredAt: 0}, Observation{Now: 2000 * ms, Angle: 352}, CorruptB{EnteredAt: 2000 * ms, FadeAlpha: 1}},
		{"angle near above", CorruptA{EnteredAt: 0}, Observation{Now: 2500 * ms, Angle: 10}, CorruptB{EnteredAt: 2500 * ms, FadeAlpha: 1}},
		{"fade visible", CorruptB{FadeAlpha: 0.002}, Observation{Now: 9 * ms}, CorruptB{FadeAlpha: 0.002}},
		{"fade done", CorruptB{FadeAlpha: 0.001}, Observation{Now: 9 * ms}, Java{EnteredAt: 9 * ms}},
		{"java terminal", Java{EnteredAt: 1}, Observation{Jumps: 69, Now: time.Hour}, Java{EnteredAt: 1}},
		{"corrupt ignores 69", CorruptA{EnteredAt: 0}, Observation{Jumps: 69, Now: 10 * ms, Angle: 90}, CorruptA{EnteredAt: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.phase, tt.obs)
			if got != tt.want {
				t.Errorf("Decide(%#v, %+v) = %#v, want %#v", tt.phase, tt.obs, got, tt.want)
			}
		})
	}
}

func TestNearOrigin(t *testing.T) {
	tests := []struct {
		angle float64
		want  bool
	}{
		{0, true},
		{10, true},
		{10.5, false},
		{180, false},
		{349.5, false},
		{350, true},
		{-5, true},
		{725, true},
	}
	for _, tt := range tests {
		if got := NearOrigin(tt.angle); got != tt.want {
			t.Errorf("NearOrigin(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestEvolveFade(t *testing.T) {
	p := Phase(CorruptB{FadeAlpha: 1})
	prev := 1.0
	for i := 0; i < 100; i++ {
		p = evolve(p)
		b := p.(CorruptB)
		if b.FadeAlpha >= prev {
			t.Fatalf("tick %d: alpha %v not below %v", i, b.FadeAlpha, prev)
		}
		prev = b.FadeAlpha
	}

	if got := evolve(Default{}); got != (Default{}) {
		t.Errorf("evolve(Default) = %#v", got)
	}
}

func TestScoreMachineEvent(t *testing.T) {
	ctx := NewContext()
	var m ScoreMachine

	if _, ok := m.Update(ctx); ok {
		t.Fatal("unexpected stage event at 0 jumps")
	}

	ctx.Player.Jumps = CorruptJumps
	ctx.Now = time.Second
	ev, ok := m.Update(ctx)
	if !ok {
		t.Fatal("expected stage event at 80 jumps")
	}
	if ev.Keyvals[1] != "DEFAULT" || ev.Keyvals[3] != "CORRUPT_A" {
		t.Errorf("event keyvals = %v", ev.Keyvals)
	}
	if _, ok := ctx.Phase.(CorruptA); !ok {
		t.Errorf("phase = %#v, want CorruptA", ctx.Phase)
	}
}

func TestStageString(t *testing.T) {
	stages := map[Stage]string{
		StageDefault:  "DEFAULT",
		StageNice:     "NICE",
		StageCorruptA: "CORRUPT_A",
		StageCorruptB: "CORRUPT_B",
		StageJava:     "JAVA",
		Stage(99):     "UNKNOWN",
	}
	for s, want := range stages {
		if s.String() != want {
			t.Errorf("Stage(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
	if StageNice.Corrupted() || !StageCorruptA.Corrupted() || !StageJava.Corrupted() {
		t.Error("Corrupted() boundary wrong")
	}
}

package ghost

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

func newAgent(id int, b Behavior, x, y int, dir engine.Direction) Agent {
	return Agent{
		Entity: engine.Entity{
			ID:     id,
			Pos:    maze.Pos{X: x, Y: y},
			Dir:    dir,
			Width:  1,
			Height: 1,
		},
		Behavior: b,
		Active:   true,
	}
}

func newTestBrain(seed int64) *Brain {
	return NewBrain(rand.New(rand.NewSource(seed)), DefaultPaceEvery)
}

func TestBehaviorNames(t *testing.T) {
	if got := len(Behaviors()); got != 8 {
		t.Fatalf("len(Behaviors()) = %d, want 8", got)
	}
	for _, b := range Behaviors() {
		got, ok := ParseBehavior(b.String())
		if !ok || got != b {
			t.Errorf("ParseBehavior(%q) = %v, %v", b.String(), got, ok)
		}
	}
	if _, ok := ParseBehavior("chaser"); ok {
		t.Error("unknown behavior accepted")
	}
}

func TestBeginTickPacing(t *testing.T) {
	b := newTestBrain(1)
	var skipped []int
	for tick := 1; tick <= 10; tick++ {
		if !b.BeginTick() {
			skipped = append(skipped, tick)
		}
	}
	if len(skipped) != 2 || skipped[0] != 5 || skipped[1] != 10 {
		t.Errorf("skipped ticks = %v, want [5 10]", skipped)
	}

	unpaced := NewBrain(rand.New(rand.NewSource(1)), 0)
	for i := 0; i < 10; i++ {
		if !unpaced.BeginTick() {
			t.Fatal("pacing disabled but a tick was skipped")
		}
	}
}

func TestCandidatesExcludeReverse(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(0, Zigzag, 5, 5, engine.Right)

	for _, c := range b.candidates(a, g) {
		if c.dir == engine.Left {
			t.Error("reverse direction offered in open space")
		}
	}
}

func TestCandidatesDeadEndAllowsReverse(t *testing.T) {
	g, _ := maze.MustParse([]string{
		"#####",
		"#...#",
		"#####",
	})
	b := newTestBrain(1)
	a := newAgent(0, Zigzag, 3, 1, engine.Right)

	cands := b.candidates(a, g)
	if len(cands) != 1 || cands[0].dir != engine.Left {
		t.Errorf("candidates = %v, want only left", cands)
	}
}

func TestChooseHoldsWhenBoxedIn(t *testing.T) {
	g, _ := maze.MustParse([]string{
		"###",
		"#.#",
		"###",
	})
	b := newTestBrain(1)
	for _, beh := range Behaviors() {
		if beh == SlowMover {
			continue
		}
		if dir, ok := b.Choose(newAgent(int(beh), beh, 1, 1, engine.None), g, maze.Pos{X: 1, Y: 1}); ok {
			t.Errorf("%v: boxed-in ghost chose %v", beh, dir)
		}
	}
}

func TestFleeMaximizesDistance(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(0, SlowMover, 5, 5, engine.None)

	dir, ok := b.Choose(a, g, maze.Pos{X: 5, Y: 3})
	if !ok || dir != engine.Down {
		t.Errorf("Choose = %v, %v; want down, true", dir, ok)
	}
}

func TestSlowMoverSkipsEveryOtherTick(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(0, SlowMover, 5, 5, engine.None)

	want := []bool{true, false, true, false, true}
	for i, w := range want {
		if _, ok := b.Choose(a, g, maze.Pos{X: 1, Y: 1}); ok != w {
			t.Errorf("call %d: moved = %v, want %v", i, ok, w)
		}
	}
}

func TestZigzagAlternatesAxis(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(0, Zigzag, 5, 5, engine.None)
	player := maze.Pos{X: 2, Y: 2}

	for i := 0; i < 8; i++ {
		dir, ok := b.Choose(a, g, player)
		if !ok {
			t.Fatalf("call %d: zigzag held", i)
		}
		wantVertical := (i/2)%2 == 0
		if dir.IsVertical() != wantVertical {
			t.Errorf("call %d: dir %v, want vertical=%v", i, dir, wantVertical)
		}
	}
	// Moving away from a player up-left means down then right.
	if dir, _ := newTestBrain(1).Choose(a, g, player); dir != engine.Down {
		t.Errorf("first zigzag step = %v, want down", dir)
	}
}

func TestDistanceKeeper(t *testing.T) {
	g := maze.NewBordered(21, 21, maze.Empty)
	player := maze.Pos{X: 10, Y: 10}
	tests := []struct {
		name string
		x, y int
		want engine.Direction
	}{
		// d2 = 9: too close, flee upward.
		{"close flees", 10, 7, engine.Up},
		// d2 = 81: down lands exactly on the ideal ring.
		{"far approaches ideal", 10, 1, engine.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBrain(1)
			dir, ok := b.Choose(newAgent(0, DistanceKeeper, tt.x, tt.y, engine.None), g, player)
			if !ok || dir != tt.want {
				t.Errorf("Choose = %v, %v; want %v", dir, ok, tt.want)
			}
		})
	}
}

func TestCornerHuggerSeeksEdges(t *testing.T) {
	g := maze.NewBordered(21, 21, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(0, CornerHugger, 3, 10, engine.None)

	dir, ok := b.Choose(a, g, maze.Pos{X: 10, Y: 10})
	if !ok || dir != engine.Left {
		t.Errorf("Choose = %v, %v; want left", dir, ok)
	}
}

func TestErraticForcesTurns(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(7)
	a := newAgent(3, Erratic, 5, 5, engine.Right)
	player := maze.Pos{X: 1, Y: 1}

	for round := 0; round < 5; round++ {
		dir, ok := b.Choose(a, g, player)
		if !ok {
			t.Fatalf("round %d: erratic held", round)
		}
		if dir == a.Dir {
			t.Errorf("round %d: forced turn kept heading %v", round, dir)
		}
		a.Dir = dir

		left := b.Counters(a.ID).ErraticLeft
		if left < 2 || left > 4 {
			t.Fatalf("round %d: interval %d outside [2,4]", round, left)
		}
		for i := 1; i < left; i++ {
			if dir, _ := b.Choose(a, g, player); dir != a.Dir {
				t.Errorf("round %d step %d: went %v between forced turns, want %v", round, i, dir, a.Dir)
			}
		}
	}
}

func TestPatrolPrefersAxis(t *testing.T) {
	g := maze.NewBordered(21, 21, maze.Empty)
	b := newTestBrain(42)
	// Fleeing goes up; the patrol axis offers left or right.
	a := newAgent(0, HorizontalPatrol, 10, 9, engine.None)
	player := maze.Pos{X: 10, Y: 10}

	horizontal := 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		dir, ok := b.Choose(a, g, player)
		if !ok {
			t.Fatal("patrol held in open space")
		}
		if dir.IsHorizontal() {
			horizontal++
		} else if dir != engine.Up {
			t.Errorf("fallback chose %v, want up", dir)
		}
	}
	if horizontal < 700 || horizontal > 900 {
		t.Errorf("horizontal choices = %d of %d, want about 80%%", horizontal, trials)
	}
}

func TestWandererStaysOnCandidates(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(3)
	a := newAgent(0, Wanderer, 1, 1, engine.Up)

	for i := 0; i < 200; i++ {
		dir, ok := b.Choose(a, g, maze.Pos{X: 9, Y: 9})
		if !ok {
			t.Fatal("wanderer held with open exits")
		}
		if dir != engine.Down && dir != engine.Right {
			t.Fatalf("wanderer chose blocked direction %v", dir)
		}
	}
}

func TestForgetResetsCounters(t *testing.T) {
	g := maze.NewBordered(11, 11, maze.Empty)
	b := newTestBrain(1)
	a := newAgent(4, Zigzag, 5, 5, engine.None)

	b.Choose(a, g, maze.Pos{X: 1, Y: 1})
	b.Choose(a, g, maze.Pos{X: 1, Y: 1})
	if got := b.Counters(4).Zigzag; got != 2 {
		t.Fatalf("Zigzag = %d, want 2", got)
	}
	b.Forget(4)
	if got := b.Counters(4); got != (Counters{}) {
		t.Errorf("counters after Forget = %+v", got)
	}
}

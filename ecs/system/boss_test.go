package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
)

func TestBossPhaseCycle(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, 0.1)
	boss, err := entity.NewBoss(w, tuning.Boss, cp.Vector{X: 0, Y: -1000})
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	sched := ecs.NewScheduler(
		NewBossIdleSystem(),
		NewBossAttackSystem(tuning.Enemy, tuning.Item),
		NewTweenSystem(),
		NewBossTweenEndSystem(),
		NewBossPhaseSystem(tuning.Game),
	)

	state, _ := ecs.Get(w, boss, component.BossComponent.Kind())
	for i := 0; i < 10; i++ {
		sched.Update(w)
	}
	if state.Phase != component.BossIdle {
		t.Fatalf("boss left idle without scroll done: %s", state.Phase)
	}

	ecs.Emit(w, ecs.EventScrollDone, boss)
	phases := []component.BossPhase{state.Phase}
	for i := 0; i < 20000 && len(phases) < 12; i++ {
		sched.Update(w)
		if state.Phase != phases[len(phases)-1] {
			phases = append(phases, state.Phase)
		}
	}

	want := []component.BossPhase{
		component.BossIdle,
		component.BossAttackBottom,
		component.BossMovingToTop,
		component.BossAttackTop,
		component.BossMovingToBottom,
		component.BossRotating,
		component.BossAttackBottom,
		component.BossMovingToTop,
		component.BossAttackTop,
		component.BossMovingToBottom,
		component.BossRotating,
		component.BossAttackBottom,
	}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phase %d = %s, want %s (all: %v)", i, phases[i], want[i], phases)
		}
	}
}

func TestBossMovingToTopReturnsToCenter(t *testing.T) {
	tuning := loadTuning(t)
	b := &component.Boss{
		Size:            tuning.Boss.Size,
		Padding:         tuning.Boss.Padding,
		SegmentDuration: tuning.Boss.SegmentDuration,
		TurnDuration:    tuning.Boss.TurnDuration,
	}
	start := cp.Vector{X: 0, Y: -1000}
	tween := MovingToTopTween(start, 0, b, tuning.Game.ScreenWidth, tuning.Game.ScreenHeight)

	pos := tween.Tracks[0]
	vertical := tuning.Game.ScreenHeight - b.Size - 2*b.Padding
	if end, _ := pos.Sample(pos.Length()); !nearVec(end, start.Add(cp.Vector{Y: vertical})) {
		t.Fatalf("end = %v", end)
	}
	corner, _ := pos.Sample(b.SegmentDuration)
	if !near(corner.X, -tuning.Game.ScreenWidth/2+b.Size/2+b.Padding) || !near(corner.Y, start.Y) {
		t.Fatalf("first corner = %v", corner)
	}
	turn, _ := tween.Tracks[1].Sample(b.TurnDuration)
	if !near(turn.X, math.Pi) {
		t.Fatalf("turn = %v, want π", turn.X)
	}
	if !pos.Notify || tween.Tracks[1].Notify {
		t.Fatalf("only the position track should notify")
	}
}

func TestAttackDirectionSweep(t *testing.T) {
	budget := 64
	tests := []struct {
		name string
		dir  cp.Vector
		k    int
		want cp.Vector
	}{
		{"bottom first shot", cp.Vector{Y: 1}, 0, cp.Vector{X: -1}},
		{"bottom center shot", cp.Vector{Y: 1}, 32, cp.Vector{Y: 1}},
		{"top first shot", cp.Vector{Y: -1}, 0, cp.Vector{X: 1}},
		{"top center shot", cp.Vector{Y: -1}, 32, cp.Vector{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttackDirection(tt.dir, tt.k, budget)
			if !nearVec(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBossAttackSpendsBudget(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, tuning.Boss.AttackInterval)
	boss, err := entity.NewBoss(w, tuning.Boss, cp.Vector{})
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	if err := ecs.Add(w, boss, component.PhaseDoneComponent.Kind(), &component.PhaseDone{}); err != nil {
		t.Fatalf("add phase done: %v", err)
	}
	phase := NewBossPhaseSystem(tuning.Game)
	attack := NewBossAttackSystem(tuning.Enemy, tuning.Item)
	phase.Update(w)

	state, ok := ecs.Get(w, boss, component.AttackStateComponent.Kind())
	if !ok || state.Direction != (cp.Vector{Y: 1}) {
		t.Fatalf("attack state = %+v, %v", state, ok)
	}
	for i := 0; i < tuning.Boss.AttackBudget; i++ {
		attack.Update(w)
	}
	if n := len(ecs.Query(w, component.BulletComponent.Kind())); n != tuning.Boss.AttackBudget {
		t.Fatalf("bullets = %d, want %d", n, tuning.Boss.AttackBudget)
	}
	if n := len(ecs.Query(w, component.ItemComponent.Kind())); n != tuning.Boss.ItemCount {
		t.Fatalf("items = %d, want %d", n, tuning.Boss.ItemCount)
	}
	if ecs.Has(w, boss, component.AttackStateComponent.Kind()) {
		t.Fatalf("attack state kept after budget")
	}
	if !ecs.Has(w, boss, component.PhaseDoneComponent.Kind()) {
		t.Fatalf("phase not reported done")
	}
}

func TestBossAccepts(t *testing.T) {
	tests := []struct {
		angle float64
		want  bool
	}{
		{0, true},
		{math.Pi / 4, true},
		{math.Pi / 2, false},
		{math.Pi, false},
		{3 * math.Pi / 2, false},
		{1.6 * math.Pi, true},
		{-math.Pi / 4, true},
		{2 * math.Pi, true},
	}
	for _, tt := range tests {
		if got := BossAccepts(tt.angle); got != tt.want {
			t.Fatalf("BossAccepts(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestBossDiesOnceAfterHundredHits(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, 1.0/60)
	boss, err := entity.NewBoss(w, tuning.Boss, cp.Vector{})
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	health, _ := ecs.Get(w, boss, component.HealthComponent.Kind())
	if health.Current != 200 || tuning.Boss.Damage != 2 {
		t.Fatalf("unexpected boss tuning: health %d damage %d", health.Current, tuning.Boss.Damage)
	}

	sys := NewBossDamageSystem(tuning.Boss)
	var reader ecs.EventReader
	died := 0
	for i := 0; i < 100; i++ {
		if !ecs.IsAlive(w, boss) {
			t.Fatalf("boss died after %d hits", i)
		}
		setContacts(t, w, boss, newBullet(t, w, component.FactionPlayer, cp.Vector{}))
		sys.Update(w)
		died += countEvents(w, &reader, ecs.EventBossDied)
	}
	for i := 0; i < 5; i++ {
		sys.Update(w)
		died += countEvents(w, &reader, ecs.EventBossDied)
	}
	if died != 1 {
		t.Fatalf("boss died events = %d, want 1", died)
	}
	if ecs.IsAlive(w, boss) {
		t.Fatalf("boss still alive")
	}
}

func TestBossRejectsWhileTurned(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, 1.0/60)
	boss, err := entity.NewBoss(w, tuning.Boss, cp.Vector{})
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	tf, _ := ecs.Get(w, boss, component.TransformComponent.Kind())
	tf.Rotation = math.Pi

	bullet := newBullet(t, w, component.FactionPlayer, cp.Vector{})
	setContacts(t, w, boss, bullet)
	NewBossDamageSystem(tuning.Boss).Update(w)

	health, _ := ecs.Get(w, boss, component.HealthComponent.Kind())
	if health.Current != health.Max {
		t.Fatalf("health = %d, want %d", health.Current, health.Max)
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("rejected bullet was consumed")
	}
}

func TestTweenCompletesOnce(t *testing.T) {
	w := newWorld(t, 0.5)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	tw := component.Tween{Tracks: []component.TweenTrack{{
		Property: component.TweenPosition,
		Segments: []component.TweenSegment{{To: cp.Vector{X: 10}, Duration: 1}},
		Notify:   true,
	}}}
	if err := ecs.Add(w, e, component.TweenComponent.Kind(), &tw); err != nil {
		t.Fatalf("add tween: %v", err)
	}

	sys := NewTweenSystem()
	var reader ecs.EventReader
	completed := 0
	for i := 0; i < 6; i++ {
		sys.Update(w)
		completed += countEvents(w, &reader, ecs.EventTweenCompleted)
	}
	if completed != 1 {
		t.Fatalf("completions = %d, want 1", completed)
	}
	tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tf.X, 10) {
		t.Fatalf("x = %v, want 10", tf.X)
	}
}

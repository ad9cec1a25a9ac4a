package component

import "github.com/jakecoffman/cp"

// LevelEnemy is a backlog entry. Waypoints are stored consumption order: the
// last element is the first target, and it is the spawn trigger.
type LevelEnemy struct {
	Start     cp.Vector
	Waypoints []cp.Vector
}

// Level is the singleton holding what has not been spawned yet.
type Level struct {
	Name    string
	Enemies []LevelEnemy
	Boss    *cp.Vector

	BossEntity uint64
	ScrollDone bool
}

var LevelComponent = NewComponent[Level]()

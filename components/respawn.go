package components

import "github.com/yohamta/donburi"

// LossCause identifies what triggered a life loss.
type LossCause int

const (
	CauseBoundaryExit LossCause = iota
	CauseHazardContact
)

func (c LossCause) String() string {
	switch c {
	case CauseBoundaryExit:
		return "boundary_exit"
	case CauseHazardContact:
		return "hazard_contact"
	}
	return "unknown"
}

// SpawnPoint is a canonical reset position and orientation.
type SpawnPoint struct {
	X, Y     float64
	Rotation float64
}

// RespawnRequest carries everything the executor needs for one recovery.
// Created by the loss arbiter, consumed by the respawn executor.
type RespawnRequest struct {
	Cause       LossCause
	PaddlePoint SpawnPoint
	BallPoint   SpawnPoint
}

// RespawnScheduleData owns the pending request, the FIFO overflow queue and
// the active countdown. At most one request is pending at any time; a loss
// accepted while one is pending appends to Queue and never overwrites
// Pending. A dequeued request always starts a full-length countdown.
// InstalledTick marks the tick the pending request was installed on; that
// tick does not count toward the delay.
type RespawnScheduleData struct {
	Pending         *RespawnRequest
	Queue           []RespawnRequest
	Timer           int
	InstalledTick   int
	LastTriggerTick int
	HasTriggered    bool
}

var RespawnSchedule = donburi.NewComponentType[RespawnScheduleData]()

// SpawnPointsData caches the canonical reset points resolved from level
// data. Immutable between level loads. The fallback flags record that a
// marker was missing so the degraded default is logged once per load, not
// once per respawn.
type SpawnPointsData struct {
	Paddle         SpawnPoint
	Ball           SpawnPoint
	FallbackCenter SpawnPoint
	PaddleFallback bool
	BallFallback   bool
}

var SpawnPoints = donburi.NewComponentType[SpawnPointsData]()

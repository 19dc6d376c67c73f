package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 120)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate matches the simulation rate the game is tuned for.
const DefaultTickRate = 120

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Highest wave reached
	Lives    int  // Lives remaining
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventWaveSpawned      EventKind = iota + 1 // A new wave entered play
	EventHostileDestroyed                      // Player fire destroyed a hostile
	EventHostileRammed                         // A hostile collided with the player
	EventHostileEscaped                        // A hostile passed the bottom edge
	EventPlayerHit                             // Hostile fire hit the player
	EventLost                                  // Lives or health ran out
	EventFinished                              // The lost overlay timed out
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventWaveSpawned:
		return "wave_spawned"
	case EventHostileDestroyed:
		return "hostile_destroyed"
	case EventHostileRammed:
		return "hostile_rammed"
	case EventHostileEscaped:
		return "hostile_escaped"
	case EventPlayerHit:
		return "player_hit"
	case EventLost:
		return "lost"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes a single occurrence during a tick.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Value int // Kind-specific: wave size, kills, damage
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

package invaders

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	Level      int
	WaveLength int

	PlayerX        int
	PlayerY        int
	PlayerHealth   int
	PlayerCooldown int

	Paused    bool
	Lost      bool
	LostCount int
	Finished  bool

	// Each hostile is 5 ints: X, Y, Health, Color, Cooldown
	HostileData []int

	// Each projectile is 3 ints: owner (-1 = player, else hostile index), X, Y
	ProjectileData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	hostiles := g.waves.Hostiles()

	hostileData := make([]int, 0, len(hostiles)*5)
	projectileData := make([]int, 0, len(g.player.Projectiles())*3)

	for _, p := range g.player.Projectiles() {
		projectileData = append(projectileData, -1, p.X, p.Y)
	}
	for i, h := range hostiles {
		hostileData = append(hostileData, h.X, h.Y, h.Health, int(h.Color), h.Cooldown())
		for _, p := range h.Projectiles() {
			projectileData = append(projectileData, i, p.X, p.Y)
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.waves.Score(),
		Lives:      g.waves.Lives(),
		Level:      g.waves.Level(),
		WaveLength: g.waves.WaveLength(),

		PlayerX:        g.player.X,
		PlayerY:        g.player.Y,
		PlayerHealth:   g.player.Health,
		PlayerCooldown: g.player.Cooldown(),

		Paused:    g.paused,
		Lost:      g.lost,
		LostCount: g.lostCount,
		Finished:  g.finished,

		HostileData:    hostileData,
		ProjectileData: projectileData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.Lives, snap.Level, snap.WaveLength,
		snap.PlayerX, snap.PlayerY, snap.PlayerHealth, snap.PlayerCooldown,
		boolInt(snap.Paused), boolInt(snap.Lost), snap.LostCount, boolInt(snap.Finished),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(len(snap.HostileData)) //#nosec G115 -- hash computation
	for _, v := range snap.HostileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(len(snap.ProjectileData)) //#nosec G115 -- hash computation
	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

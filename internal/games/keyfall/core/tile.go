package core

// Kind identifies the variant of a live tile.
type Kind uint8

const (
	KindAir Kind = iota
	KindFlux
	KindUnbreakable
	KindPlayer
	KindStone
	KindBox
	KindKey
	KindLock
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "Air"
	case KindFlux:
		return "Flux"
	case KindUnbreakable:
		return "Unbreakable"
	case KindPlayer:
		return "Player"
	case KindStone:
		return "Stone"
	case KindBox:
		return "Box"
	case KindKey:
		return "Key"
	case KindLock:
		return "Lock"
	default:
		return "Unknown"
	}
}

// Tile is the content of one grid cell.
// Stone and Box carry a FallingState; Key and Lock carry a KeyID.
// The zero value is Air.
type Tile struct {
	kind    Kind
	falling FallingState
	key     KeyID
}

// Air returns an empty cell.
func Air() Tile { return Tile{kind: KindAir} }

// Flux returns a cosmetic empty cell that still supports blocks.
func Flux() Tile { return Tile{kind: KindFlux} }

// Unbreakable returns a wall.
func Unbreakable() Tile { return Tile{kind: KindUnbreakable} }

// Player returns the marker occupying the player's cell.
func Player() Tile { return Tile{kind: KindPlayer} }

// Stone returns a movable stone in the given state.
func Stone(state FallingState) Tile { return Tile{kind: KindStone, falling: state} }

// Box returns a movable box in the given state.
func Box(state FallingState) Tile { return Tile{kind: KindBox, falling: state} }

// Key returns a collectible key with the given identity.
func Key(id KeyID) Tile { return Tile{kind: KindKey, key: id} }

// Lock returns a gate opened by the key with the given identity.
func Lock(id KeyID) Tile { return Tile{kind: KindLock, key: id} }

// Kind returns the tile variant.
func (t Tile) Kind() Kind { return t.kind }

// KeyID returns the key identity of a Key or Lock, and 0 otherwise.
func (t Tile) KeyID() KeyID {
	if t.kind == KindKey || t.kind == KindLock {
		return t.key
	}
	return 0
}

func (t Tile) IsAir() bool    { return t.kind == KindAir }
func (t Tile) IsFlux() bool   { return t.kind == KindFlux }
func (t Tile) IsPlayer() bool { return t.kind == KindPlayer }
func (t Tile) IsKey1() bool   { return t.kind == KindKey && t.key == Key1 }
func (t Tile) IsKey2() bool   { return t.kind == KindKey && t.key == Key2 }
func (t Tile) IsLock1() bool  { return t.kind == KindLock && t.key == Key1 }
func (t Tile) IsLock2() bool  { return t.kind == KindLock && t.key == Key2 }

// IsMovable reports whether the tile obeys gravity and can be pushed.
func (t Tile) IsMovable() bool {
	return t.kind == KindStone || t.kind == KindBox
}

// IsFalling reports whether a movable tile is currently in free fall.
func (t Tile) IsFalling() bool {
	return t.IsMovable() && t.falling.IsFalling()
}

// FallingState returns the tile's own falling state.
// Non-movable tiles always report Resting.
func (t Tile) FallingState() FallingState {
	if !t.IsMovable() {
		return Resting
	}
	return t.falling
}

// SupportState is the state a movable tile sitting on top of t takes.
// Only Air fails to support; Flux and movable tiles count as ground
// regardless of their own state.
func (t Tile) SupportState() FallingState {
	if t.kind == KindAir {
		return Falling
	}
	return Resting
}

// Drop puts a movable tile into free fall.
func (t *Tile) Drop() {
	if t.IsMovable() {
		t.falling = Falling
	}
}

// Rest marks a movable tile as supported.
func (t *Tile) Rest() {
	if t.IsMovable() {
		t.falling = Resting
	}
}

// Color returns the tile's hex RGB color, or "" for transparent tiles.
func (t Tile) Color(keys *KeyRegistry) string {
	switch t.kind {
	case KindFlux:
		return ColorFlux
	case KindUnbreakable:
		return ColorUnbreakable
	case KindStone:
		return ColorStone
	case KindBox:
		return ColorBox
	case KindKey, KindLock:
		return keys.Config(t.key).Color()
	default:
		return ""
	}
}

// Raw converts the tile back to its layout code.
func (t Tile) Raw() RawTile {
	switch t.kind {
	case KindFlux:
		return RawFlux
	case KindUnbreakable:
		return RawUnbreakable
	case KindPlayer:
		return RawPlayer
	case KindStone:
		if t.falling.IsFalling() {
			return RawFallingStone
		}
		return RawStone
	case KindBox:
		if t.falling.IsFalling() {
			return RawFallingBox
		}
		return RawBox
	case KindKey:
		if t.key == Key1 {
			return RawKey1
		}
		return RawKey2
	case KindLock:
		if t.key == Key1 {
			return RawLock1
		}
		return RawLock2
	default:
		return RawAir
	}
}

// MoveHorizontal reacts to the player trying to step onto this tile
// from the side.
func (t Tile) MoveHorizontal(g *Grid, dx int) {
	switch t.kind {
	case KindAir, KindFlux:
		g.moveToTile(g.px+dx, g.py)
	case KindKey:
		g.RemoveMatching(g.keys.Config(t.key).RemoveStrategy())
		g.moveToTile(g.px+dx, g.py)
	case KindStone, KindBox:
		t.falling.MoveHorizontal(g, dx)
	}
}

// MoveVertical reacts to the player trying to step onto this tile from
// above or below. Movable tiles cannot be pushed vertically.
func (t Tile) MoveVertical(g *Grid, dy int) {
	switch t.kind {
	case KindAir, KindFlux:
		g.moveToTile(g.px, g.py+dy)
	case KindKey:
		g.RemoveMatching(g.keys.Config(t.key).RemoveStrategy())
		g.moveToTile(g.px, g.py+dy)
	}
}

// Update runs the per-tick gravity step for the tile at (x, y).
// t must point into g's cell storage.
func (t *Tile) Update(g *Grid, x, y int) {
	if !t.IsMovable() {
		return
	}
	t.falling = g.cells[y+1][x].SupportState()
	if t.falling.IsFalling() {
		g.cells[y+1][x] = *t
		g.cells[y][x] = Air()
	}
}

// transformTile builds the live tile for a layout code.
func transformTile(raw RawTile) (Tile, bool) {
	switch raw {
	case RawAir:
		return Air(), true
	case RawFlux:
		return Flux(), true
	case RawUnbreakable:
		return Unbreakable(), true
	case RawPlayer:
		return Player(), true
	case RawStone:
		return Stone(Resting), true
	case RawFallingStone:
		return Stone(Falling), true
	case RawBox:
		return Box(Resting), true
	case RawFallingBox:
		return Box(Falling), true
	case RawKey1:
		return Key(Key1), true
	case RawLock1:
		return Lock(Key1), true
	case RawKey2:
		return Key(Key2), true
	case RawLock2:
		return Lock(Key2), true
	default:
		return Tile{}, false
	}
}

package core

// KeyID pairs a key with the locks it opens.
type KeyID uint8

const (
	Key1 KeyID = 1
	Key2 KeyID = 2
)

// RemoveStrategy selects the tiles cleared when a key is collected.
type RemoveStrategy func(Tile) bool

// RemoveLock1 matches locks opened by Key1.
func RemoveLock1(t Tile) bool { return t.IsLock1() }

// RemoveLock2 matches locks opened by Key2.
func RemoveLock2(t Tile) bool { return t.IsLock2() }

// KeyConfiguration is the immutable description shared by every Key and
// Lock of one identity.
type KeyConfiguration struct {
	color  string
	is1    bool
	remove RemoveStrategy
}

// Color returns the hex color of keys and locks of this identity.
func (c KeyConfiguration) Color() string { return c.color }

// Is1 reports whether this is the configuration of Key1.
func (c KeyConfiguration) Is1() bool { return c.is1 }

// RemoveStrategy returns the predicate applied grid-wide on collection.
func (c KeyConfiguration) RemoveStrategy() RemoveStrategy { return c.remove }

// KeyRegistry holds the two key configurations of a simulation.
type KeyRegistry struct {
	key1 KeyConfiguration
	key2 KeyConfiguration
}

// NewKeyRegistry builds a registry with the given colors per identity.
func NewKeyRegistry(color1, color2 string) *KeyRegistry {
	return &KeyRegistry{
		key1: KeyConfiguration{color: color1, is1: true, remove: RemoveLock1},
		key2: KeyConfiguration{color: color2, is1: false, remove: RemoveLock2},
	}
}

// DefaultKeyRegistry returns a registry using the default key colors.
func DefaultKeyRegistry() *KeyRegistry {
	return NewKeyRegistry(ColorKey1, ColorKey2)
}

// Config returns the configuration for id. Any id other than Key1
// resolves to the Key2 configuration.
func (r *KeyRegistry) Config(id KeyID) KeyConfiguration {
	if id == Key1 {
		return r.key1
	}
	return r.key2
}

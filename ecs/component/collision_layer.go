package component

const (
	LayerPlayer uint32 = 1 << iota
	LayerPlayerBullet
	LayerEnemy
	LayerEnemyBullet
	LayerItem
)

// CollisionLayer allows entities to declare a collision category and mask
// so the contact system only reports pairs that matter to gameplay.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category.
	Category uint32
	// Mask is a bitmask of categories this entity should touch.
	Mask uint32
}

// LayerFor returns the category and mask for a gameplay faction layer.
// Player touches enemies, enemy bullets and items; player bullets touch
// enemies only.
func LayerFor(category uint32) CollisionLayer {
	switch category {
	case LayerPlayer:
		return CollisionLayer{Category: LayerPlayer, Mask: LayerEnemy | LayerEnemyBullet | LayerItem}
	case LayerPlayerBullet:
		return CollisionLayer{Category: LayerPlayerBullet, Mask: LayerEnemy}
	case LayerEnemy:
		return CollisionLayer{Category: LayerEnemy, Mask: LayerPlayer | LayerPlayerBullet}
	case LayerEnemyBullet:
		return CollisionLayer{Category: LayerEnemyBullet, Mask: LayerPlayer}
	case LayerItem:
		return CollisionLayer{Category: LayerItem, Mask: LayerPlayer}
	default:
		return CollisionLayer{Category: category}
	}
}

// Touches reports whether both sides accept each other.
func (l CollisionLayer) Touches(other CollisionLayer) bool {
	return l.Mask&other.Category != 0 && other.Mask&l.Category != 0
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

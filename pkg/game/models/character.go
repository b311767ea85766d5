package models

// CharacterKind says which side of the board a character fights on.
type CharacterKind int

const (
	KindCharacter CharacterKind = iota
	KindOpponent
)

func (k CharacterKind) String() string {
	if k == KindOpponent {
		return "Opponent"
	}
	return "Character"
}

// DefaultHealth is the starting health of a new character.
const DefaultHealth = 100

// Character is one combatant.
type Character struct {
	Name string
	Kind CharacterKind
	// Portrait is the resource path of the portrait image.
	Portrait string

	Health    int
	MaxHealth int

	Abilities []*Ability
}

// NewCharacter creates a character at full health. image is the file name
// under /images/characters.
func NewCharacter(name string, kind CharacterKind, image string) *Character {
	return &Character{
		Name:      name,
		Kind:      kind,
		Portrait:  "/images/characters/" + image,
		Health:    DefaultHealth,
		MaxHealth: DefaultHealth,
	}
}

// AddAbility gives the character an ability and returns it for chaining.
func (c *Character) AddAbility(a *Ability) *Character {
	c.Abilities = append(c.Abilities, a)
	return c
}

// Damage lowers health by n, stopping at zero, and returns the health left.
func (c *Character) Damage(n int) int {
	if n < 0 {
		n = 0
	}
	c.Health -= n
	if c.Health < 0 {
		c.Health = 0
	}
	return c.Health
}

// Defeated reports whether the character has no health left.
func (c *Character) Defeated() bool {
	return c.Health <= 0
}

// HealthFraction returns health as a fraction of the maximum in [0, 1].
func (c *Character) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}

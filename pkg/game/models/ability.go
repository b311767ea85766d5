package models

import "fmt"

// AbilityStatus is the lifecycle of an ability badge.
type AbilityStatus int

const (
	// InStock abilities are ready to use.
	InStock AbilityStatus = iota
	// Active abilities are taking effect this turn.
	Active
	// Inactive abilities are spent.
	Inactive
)

func (s AbilityStatus) String() string {
	switch s {
	case Active:
		return "Activated"
	case Inactive:
		return "Inactive"
	default:
		return "InStock"
	}
}

// Ability is a special move a character can spend.
type Ability struct {
	Name string
	// Icon is the badge base name; see IconPath.
	Icon    string
	Status  AbilityStatus
	Charges int
}

// NewAbility creates an ability in stock with the given number of charges.
func NewAbility(name, icon string, charges int) *Ability {
	return &Ability{Name: name, Icon: icon, Charges: charges}
}

// IconPath returns the badge image for the current status.
func (a *Ability) IconPath() string {
	return fmt.Sprintf("/images/badges/%s_%s.png", a.Icon, a.Status)
}

// Activate spends one charge. It reports false if the ability is not in
// stock.
func (a *Ability) Activate() bool {
	if a.Status != InStock || a.Charges <= 0 {
		return false
	}
	a.Charges--
	a.Status = Active
	return true
}

// Refresh ends the active phase, returning the ability to stock while
// charges remain.
func (a *Ability) Refresh() {
	if a.Status != Active {
		return
	}
	if a.Charges > 0 {
		a.Status = InStock
	} else {
		a.Status = Inactive
	}
}

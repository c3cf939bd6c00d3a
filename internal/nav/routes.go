// Package nav names the screens of the app and builds their paths.
package nav

import (
	"strconv"
	"strings"

	"contabilidad/internal/core"
)

// Route patterns. Segments in braces are arguments.
const (
	Home           = "home"
	AddMovement    = "add_movement/{type}"
	EditMovement   = "edit_movement/{movementId}"
	MovementDetail = "movement_detail/{movementId}"
	Settings       = "settings"
)

// DefaultAddType is the movement type used when add_movement has none.
const DefaultAddType = core.Income

// AddMovementRoute builds the add screen path for a movement type.
func AddMovementRoute(t string) string {
	return "add_movement/" + t
}

func EditMovementRoute(id int64) string {
	return "edit_movement/" + strconv.FormatInt(id, 10)
}

func MovementDetailRoute(id int64) string {
	return "movement_detail/" + strconv.FormatInt(id, 10)
}

// ParseMovementID reads a movementId argument. Missing or malformed values
// yield 0.
func ParseMovementID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// ParseAddType reads the type argument of add_movement, falling back to
// INCOME when it is missing. Other values are passed through untouched.
func ParseAddType(raw string) string {
	if t := strings.TrimSpace(raw); t != "" {
		return t
	}
	return string(DefaultAddType)
}

// pkg/engine/command.go
package engine

import "github.com/opd-ai/go-stardrift/pkg/entity"

// CommandKind enumerates the closed set of simulation commands. Adding a
// kind is a deliberate breaking change; unknown kinds are ignored.
type CommandKind int

const (
	CmdMoveUp CommandKind = iota
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdToggleAlt
	CmdToggleBoost
	CmdToggleControl
	CmdMouseTarget
	CmdTargetEntity
	CmdStartTrackingShot
	CmdStopTrackingShot
	CmdStartAutofire
	CmdStopAutofire
)

// Command is a single externally produced input, consumed exactly once by
// the next Tick and then discarded.
type Command struct {
	Kind CommandKind

	// Enabled carries the payload for the three mode toggles.
	Enabled bool

	// X, Y are screen coordinates for mouse-target commands; CamX, CamY
	// are the camera offset at the time of the click, needed to resolve
	// the world-space aim angle.
	X    float64
	Y    float64
	CamX float64
	CamY float64

	// Target selects an entity for pre-locked homing shots.
	Target entity.ID
}

// Move constructs a directional movement command.
func Move(kind CommandKind) Command {
	return Command{Kind: kind}
}

// Toggle constructs a mode toggle command.
func Toggle(kind CommandKind, enabled bool) Command {
	return Command{Kind: kind, Enabled: enabled}
}

// MouseTarget constructs an aim command from screen coordinates and the
// current camera offset.
func MouseTarget(x, y, camX, camY float64) Command {
	return Command{Kind: CmdMouseTarget, X: x, Y: y, CamX: camX, CamY: camY}
}

// TargetEntity constructs a target-selection command.
func TargetEntity(id entity.ID) Command {
	return Command{Kind: CmdTargetEntity, Target: id}
}

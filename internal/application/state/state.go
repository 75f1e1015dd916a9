package state

// SceneKind names a scene. Scenes return it from Update to request a switch;
// SceneNone means stay on the current scene.
type SceneKind int

const (
	SceneNone SceneKind = iota
	SceneIntro
	SceneCooking
	SceneTransition
	SceneOutro
)

// String returns the string representation of the scene kind
func (k SceneKind) String() string {
	switch k {
	case SceneNone:
		return "None"
	case SceneIntro:
		return "Intro"
	case SceneCooking:
		return "Cooking"
	case SceneTransition:
		return "Transition"
	case SceneOutro:
		return "Outro"
	default:
		return "Unknown"
	}
}

// Pose is the character animation active during a cooking round
type Pose int

const (
	PoseIdle Pose = iota
	PoseAction
)

// String returns the string representation of the pose
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "Idle"
	case PoseAction:
		return "Action"
	default:
		return "Unknown"
	}
}

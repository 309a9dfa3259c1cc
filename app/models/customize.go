package models

// CustomizeStep is the closed set of cake customization wizard states.
type CustomizeStep int

const (
	StepShapeSize CustomizeStep = iota + 1
	StepFlavor
	StepFrostingDecor
	StepMessagePhoto
	StepCustomizeReview
)

func (s CustomizeStep) String() string {
	switch s {
	case StepShapeSize:
		return "shape_size"
	case StepFlavor:
		return "flavor"
	case StepFrostingDecor:
		return "frosting_decor"
	case StepMessagePhoto:
		return "message_photo"
	case StepCustomizeReview:
		return "review"
	}
	return "unknown"
}

// CustomizationDraft is the transient cake configurator record. Shape,
// size, flavor and frosting are single-select; decorations are a toggle
// set. The draft lives only while the wizard is open.
type CustomizationDraft struct {
	Step CustomizeStep `json:"step"`

	Shape       string   `json:"shape"`
	Size        string   `json:"size"`
	Flavor      string   `json:"flavor"`
	Frosting    string   `json:"frosting"`
	Decorations []string `json:"decorations"`
	Theme       string   `json:"theme"`

	Message             string `json:"message"`
	MessageColor        string `json:"message_color"`
	UploadedImage       string `json:"uploaded_image"`
	SpecialInstructions string `json:"special_instructions"`
	IsEggless           bool   `json:"is_eggless"`
}

// HasDecoration reports whether the decoration id is currently selected.
func (d CustomizationDraft) HasDecoration(id string) bool {
	for _, dec := range d.Decorations {
		if dec == id {
			return true
		}
	}
	return false
}

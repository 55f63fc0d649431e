// ABOUTME: Default control hints for the game detail view
// ABOUTME: Maps game categories to generic keyboard/mouse control lists

package render

import "strings"

// ControlHint is one input binding shown in the detail view.
type ControlHint struct {
	Icon string // icon token, e.g. "arrow-up" or "mouse"
	Text string
}

// Controls returns the default control hints for a category. Records carry
// no per-game control data, so hints are generic per category with a
// catch-all default.
func Controls(category string) []ControlHint {
	switch strings.ToLower(category) {
	case "racing":
		return []ControlHint{
			{Icon: "arrow-up", Text: "Accelerate"},
			{Icon: "arrow-down", Text: "Brake / Reverse"},
			{Icon: "arrow-left", Text: "Turn Left"},
			{Icon: "arrow-right", Text: "Turn Right"},
			{Icon: "space-bar", Text: "Handbrake / Drift"},
		}
	case "shooting":
		return []ControlHint{
			{Icon: "arrow-up", Text: "Move Forward"},
			{Icon: "arrow-down", Text: "Move Backward"},
			{Icon: "arrow-left", Text: "Move Left"},
			{Icon: "arrow-right", Text: "Move Right"},
			{Icon: "mouse", Text: "Aim"},
			{Icon: "mouse-pointer", Text: "Shoot"},
		}
	case "puzzle":
		return []ControlHint{
			{Icon: "mouse", Text: "Select / Move"},
			{Icon: "mouse-pointer", Text: "Click to Interact"},
		}
	case "adventure":
		return []ControlHint{
			{Icon: "arrow-up", Text: "Move Forward / Jump"},
			{Icon: "arrow-down", Text: "Move Backward / Duck"},
			{Icon: "arrow-left", Text: "Move Left"},
			{Icon: "arrow-right", Text: "Move Right"},
			{Icon: "mouse", Text: "Look Around"},
			{Icon: "mouse-pointer", Text: "Interact"},
		}
	default:
		return []ControlHint{
			{Icon: "arrow-up", Text: "Move Up / Jump"},
			{Icon: "arrow-left", Text: "Move Left"},
			{Icon: "arrow-right", Text: "Move Right"},
			{Icon: "arrow-down", Text: "Move Down / Duck"},
			{Icon: "mouse", Text: "Aim / Interact"},
		}
	}
}

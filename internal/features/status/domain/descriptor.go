package domain

import "fmt"

// Color is a semantic color name understood by the front-end theme.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

// Icon is a symbolic icon identifier.
type Icon string

const (
	IconClock         Icon = "clock"
	IconCheckCircle   Icon = "check-circle"
	IconCreditCard    Icon = "credit-card"
	IconTruck         Icon = "truck"
	IconNavigation    Icon = "navigation"
	IconPackageCheck  Icon = "package-check"
	IconXCircle       Icon = "x-circle"
	IconPause         Icon = "pause-circle"
	IconRepeat        Icon = "repeat"
	IconAlertTriangle Icon = "alert-triangle"
)

// Tone is a background/foreground pair of style tokens.
type Tone struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// BadgeStyle holds the light and dark theme tones of a status badge.
type BadgeStyle struct {
	Light Tone `json:"light"`
	Dark  Tone `json:"dark"`
}

// Descriptor is the display metadata derived from a status.
type Descriptor struct {
	// Color is the semantic color of the status.
	Color Color `json:"color"`
	// Label is the localized human-readable text.
	Label string `json:"label"`
	// Badge holds the style tokens for light and dark themes.
	Badge BadgeStyle `json:"badge_style"`
	// Icon is the symbolic icon identifier.
	Icon Icon `json:"icon"`
	// Progress is the coarse completion ordinal in [0,3].
	Progress int `json:"progress"`
}

type appearance struct {
	color    Color
	icon     Icon
	progress int
}

var appearances = map[Status]appearance{
	StatusPending:           {ColorYellow, IconClock, 0},
	StatusConfirmed:         {ColorBlue, IconCheckCircle, 1},
	StatusAcceptedBySender:  {ColorGreen, IconCreditCard, 1},
	StatusAcceptedByCarrier: {ColorBlue, IconTruck, 2},
	StatusInTransit:         {ColorOrange, IconNavigation, 2},
	StatusDelivered:         {ColorGreen, IconPackageCheck, 3},
	StatusCancelled:         {ColorRed, IconXCircle, 0},
	StatusAwaitingRelay:     {ColorOrange, IconPause, 2},
	StatusRelayInProgress:   {ColorPurple, IconRepeat, 2},
}

var fallbackAppearance = appearance{ColorGray, IconAlertTriangle, 0}

// BadgeFor derives the badge tones of a color.
func BadgeFor(c Color) BadgeStyle {
	return BadgeStyle{
		Light: Tone{
			Background: fmt.Sprintf("bg-%s-100", c),
			Foreground: fmt.Sprintf("text-%s-800", c),
		},
		Dark: Tone{
			Background: fmt.Sprintf("dark:bg-%s-900", c),
			Foreground: fmt.Sprintf("dark:text-%s-200", c),
		},
	}
}

// Describer builds descriptors with a given label set.
type Describer struct {
	labels LabelSet
}

// NewDescriber returns a Describer using a copy of labels. A nil set means French.
func NewDescriber(labels LabelSet) Describer {
	if labels == nil {
		return Describer{labels: labelsFR}
	}
	return Describer{labels: labels.clone()}
}

// Describe returns the descriptor for raw. It never fails: unknown values get
// a gray badge, the warning icon, progress 0 and the raw string as label.
func (d Describer) Describe(raw string) Descriptor {
	s, ok := Parse(raw)
	if !ok {
		return Descriptor{
			Color:    fallbackAppearance.color,
			Label:    raw,
			Badge:    BadgeFor(fallbackAppearance.color),
			Icon:     fallbackAppearance.icon,
			Progress: fallbackAppearance.progress,
		}
	}
	return d.DescribeStatus(s)
}

// DescribeStatus returns the descriptor of an already parsed status.
func (d Describer) DescribeStatus(s Status) Descriptor {
	a, ok := appearances[s]
	if !ok {
		a = fallbackAppearance
	}
	labels := d.labels
	if labels == nil {
		labels = labelsFR
	}
	return Descriptor{
		Color:    a.color,
		Label:    labels.label(s, string(s)),
		Badge:    BadgeFor(a.color),
		Icon:     a.icon,
		Progress: a.progress,
	}
}

var defaultDescriber = NewDescriber(nil)

// Describe returns the French descriptor for raw.
func Describe(raw string) Descriptor {
	return defaultDescriber.Describe(raw)
}

// Progress returns the completion ordinal of s.
func (s Status) Progress() int {
	if a, ok := appearances[s]; ok {
		return a.progress
	}
	return fallbackAppearance.progress
}

// ProgressOf returns Describe(raw).Progress.
func ProgressOf(raw string) int {
	s, _ := Parse(raw)
	return s.Progress()
}

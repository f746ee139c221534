// Package hover shows a region's description in a shared display while the
// pointer is over that region.
package hover

// Region is a hoverable area with an associated description.
type Region struct {
	ID          string
	Description string
}

// Display receives the description text.
type Display interface {
	SetText(text string)
}

// Panel maps hoverable regions to a shared display.
type Panel struct {
	descriptions map[string]string
	display      Display
}

// NewPanel creates a panel. A panel without regions or without a display is inert.
func NewPanel(regions []Region, display Display) *Panel {
	descriptions := make(map[string]string, len(regions))
	for _, region := range regions {
		descriptions[region.ID] = region.Description
	}
	return &Panel{descriptions: descriptions, display: display}
}

// Active reports whether hover events have any effect.
func (panel *Panel) Active() bool {
	return panel.display != nil && len(panel.descriptions) > 0
}

// Enter shows the description of region id.
func (panel *Panel) Enter(id string) {
	if !panel.Active() {
		return
	}
	description, ok := panel.descriptions[id]
	if !ok {
		return
	}
	panel.display.SetText(description)
}

// Leave clears the display.
func (panel *Panel) Leave(id string) {
	if !panel.Active() {
		return
	}
	if _, ok := panel.descriptions[id]; !ok {
		return
	}
	panel.display.SetText("")
}

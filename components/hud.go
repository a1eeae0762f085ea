package components

import "github.com/yohamta/donburi"

// HUD surface ids. Each surface is shown/hidden independently and the
// recovery sequence snapshots the exact visibility of every surface
// before hiding them.
const (
	HUDDeaths    = "deaths"
	HUDStamina   = "stamina"
	HUDDetection = "detection"
	HUDHint      = "hint"
)

// AllHUDSurfaces lists every surface id the HUD renders.
var AllHUDSurfaces = []string{HUDDeaths, HUDStamina, HUDDetection, HUDHint}

type HUDData struct {
	Visible map[string]bool

	// Snapshot holds the pre-capture visibility while the recovery
	// sequence has the HUD hidden; nil otherwise.
	Snapshot map[string]bool
}

// SnapshotAndHide records each surface's visibility, then hides it.
func (h *HUDData) SnapshotAndHide() {
	h.Snapshot = make(map[string]bool, len(h.Visible))
	for id, visible := range h.Visible {
		h.Snapshot[id] = visible
		h.Visible[id] = false
	}
}

// Restore puts every surface back to its snapshotted visibility. Surfaces
// toggled while hidden are overwritten; restoration is exact, not a
// blanket re-show.
func (h *HUDData) Restore() {
	if h.Snapshot == nil {
		return
	}
	for id, visible := range h.Snapshot {
		h.Visible[id] = visible
	}
	h.Snapshot = nil
}

var HUD = donburi.NewComponentType[HUDData]()

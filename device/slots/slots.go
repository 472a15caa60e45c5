// Package slots gives gamepads a stable controller index. A gamepad keeps its
// slot for as long as it is connected. A newly connected gamepad takes the
// lowest free slot.
package slots

import "github.com/jetsetilly/inputmaster/binding"

// Slots maps controller indexes to backend gamepad IDs
type Slots[ID comparable] struct {
	ids  [binding.MaxControllers]ID
	used [binding.MaxControllers]bool
}

// Assign updates the slots from the list of currently connected gamepads.
// Gamepads that are no longer connected release their slot. Gamepads beyond
// the number of slots are ignored. Returns true if any slot changed
func (s *Slots[ID]) Assign(connected []ID) bool {
	var changed bool

	present := make(map[ID]bool, len(connected))
	for _, id := range connected {
		present[id] = true
	}

	for i := range s.ids {
		if s.used[i] && !present[s.ids[i]] {
			var zero ID
			s.ids[i] = zero
			s.used[i] = false
			changed = true
		}
	}

	for _, id := range connected {
		if _, ok := s.Slot(id); ok {
			continue
		}
		for i := range s.ids {
			if !s.used[i] {
				s.ids[i] = id
				s.used[i] = true
				changed = true
				break // for
			}
		}
	}

	return changed
}

// Get returns the ID of the gamepad in the slot
func (s *Slots[ID]) Get(slot int) (ID, bool) {
	var zero ID
	if slot < 0 || slot >= len(s.ids) || !s.used[slot] {
		return zero, false
	}
	return s.ids[slot], true
}

// Slot returns the slot of the gamepad with the ID
func (s *Slots[ID]) Slot(id ID) (int, bool) {
	for i := range s.ids {
		if s.used[i] && s.ids[i] == id {
			return i, true
		}
	}
	return -1, false
}

// Count returns the number of occupied slots
func (s *Slots[ID]) Count() int {
	var n int
	for _, u := range s.used {
		if u {
			n++
		}
	}
	return n
}

package domain

import "github.com/m04kA/SMC-ConfiguratorService/pkg/types"

// CanonicalSlots returns the fixed, ordered list of appointment start times
func CanonicalSlots() []types.TimeString {
	return []types.TimeString{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
}

// SlotSet availability of one location on one date
type SlotSet struct {
	All       []types.TimeString
	Booked    []types.TimeString
	Available []types.TimeString
}

// Contains returns true if t is one of the available slots
func (s *SlotSet) Contains(t types.TimeString) bool {
	for _, slot := range s.Available {
		if slot == t {
			return true
		}
	}
	return false
}

// IsCanonicalSlot returns true if t is one of the canonical start times
func IsCanonicalSlot(t types.TimeString) bool {
	for _, slot := range CanonicalSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

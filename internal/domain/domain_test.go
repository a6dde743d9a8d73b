package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

func TestAppointment_Datetime(t *testing.T) {
	a := Appointment{
		Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Time: types.MustTimeString("14:00"),
	}

	assert.Equal(t, "2024-01-15", a.DateString())
	assert.Equal(t, "2024-01-15T14:00:00", a.Datetime())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("no_show").IsValid())
}

func TestSlotSet_Contains(t *testing.T) {
	set := SlotSet{Available: []types.TimeString{"09:00", "14:00"}}

	assert.True(t, set.Contains("14:00"))
	assert.False(t, set.Contains("10:00"))
}

func TestIsCanonicalSlot(t *testing.T) {
	assert.True(t, IsCanonicalSlot("16:00"))
	assert.False(t, IsCanonicalSlot("12:00"))
}

func TestParseStringList(t *testing.T) {
	assert.Equal(t, []string{"leather", "alcantara"}, ParseStringList(`["leather","alcantara"]`))
	assert.Equal(t, []string{}, ParseStringList(`not json`))
	assert.Nil(t, ParseStringList(""))
}

func TestProductFilter_Normalize(t *testing.T) {
	f := ProductFilter{Category: " wraps ", Search: "  Satin BLACK "}.Normalize()

	assert.Equal(t, "wraps", f.Category)
	assert.Equal(t, "satin black", f.Search)
}

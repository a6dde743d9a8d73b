package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

func TestBuildInsertQuery(t *testing.T) {
	quoteID := "QT-1"
	createdAt := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:               "BK-1",
		ConfirmationCode: "AAWX1Y2Z3",
		Status:           domain.StatusConfirmed,
		Location:         domain.Location{ID: "casa"},
		Appointment: domain.Appointment{
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Time: types.MustTimeString("10:00"),
		},
		Customer:  domain.Customer{Name: "Amina", Email: "amina@example.com"},
		Vehicle:   map[string]interface{}{"make": "BMW"},
		QuoteID:   &quoteID,
		CreatedAt: createdAt,
	}

	query, args, err := buildInsertQuery(b)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO bookings")
	assert.Contains(t, query, "$12")
	require.Len(t, args, 12)
	assert.Equal(t, "BK-1", args[0])
	assert.Equal(t, "2024-01-15", args[4])
	assert.Equal(t, types.TimeString("10:00"), args[5])
	assert.JSONEq(t, `{"make":"BMW"}`, args[9].(string))
	assert.Equal(t, &quoteID, args[10])
	assert.Equal(t, createdAt, args[11])
}

func TestBuildInsertQuery_NilVehicle(t *testing.T) {
	_, args, err := buildInsertQuery(&domain.Booking{ID: "BK-2"})
	require.NoError(t, err)
	assert.Equal(t, "{}", args[9])
}

func TestBuildInsertQuery_UnencodableVehicle(t *testing.T) {
	_, _, err := buildInsertQuery(&domain.Booking{Vehicle: map[string]interface{}{"bad": make(chan int)}})
	assert.ErrorIs(t, err, ErrEncodeVehicle)
}

func TestBuildReservedTimesQuery(t *testing.T) {
	query, args, err := buildReservedTimesQuery("casa", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT appointment_time FROM bookings WHERE location_id = $1 AND appointment_date = $2 AND status <> $3 ORDER BY appointment_time",
		query)
	assert.Equal(t, []interface{}{"casa", "2024-01-15", domain.StatusCancelled}, args)
}

func TestDecodeVehicle(t *testing.T) {
	raw, _ := json.Marshal(map[string]interface{}{"model": "M3", "year": 2021})

	assert.Equal(t, map[string]interface{}{"model": "M3", "year": float64(2021)}, decodeVehicle(raw))
	assert.Equal(t, map[string]interface{}{}, decodeVehicle(nil))
	assert.Equal(t, map[string]interface{}{}, decodeVehicle([]byte("null")))
	assert.Equal(t, map[string]interface{}{}, decodeVehicle([]byte("{broken")))
}

package services

import (
	"testing"
	"time"

	"CareSphere/models"
	"CareSphere/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "12 hour clock",
			date: "2025-05-08",
			time: "10:30 AM",
			want: time.Date(2025, 5, 8, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "12 hour clock afternoon",
			date: "2025-05-08",
			time: "2:15 PM",
			want: time.Date(2025, 5, 8, 14, 15, 0, 0, time.UTC),
		},
		{
			name: "24 hour clock",
			date: "2025-05-08",
			time: "16:45",
			want: time.Date(2025, 5, 8, 16, 45, 0, 0, time.UTC),
		},
		{
			name:    "garbage time",
			date:    "2025-05-08",
			time:    "half past ten",
			wantErr: true,
		},
		{
			name:    "garbage date",
			date:    "08/05/2025",
			time:    "10:30 AM",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateTime(tt.date, tt.time)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestValidateAppointmentInput(t *testing.T) {
	valid := map[string]interface{}{
		"patientId": "p1",
		"doctorId":  "d1",
		"date":      "2025-05-08",
		"time":      "10:30 AM",
		"service":   "consultation",
	}
	assert.NoError(t, validateAppointmentInput(valid))

	for _, field := range []string{"patientId", "doctorId", "date", "time", "service"} {
		data := map[string]interface{}{}
		for k, v := range valid {
			data[k] = v
		}
		delete(data, field)
		err := validateAppointmentInput(data)
		require.Error(t, err, "missing %s should fail", field)
		assert.Equal(t, 400, utils.StatusOf(err))
	}
}

func storedAppointment() *models.Appointment {
	when, _ := CombineDateTime("2025-05-08", "10:30 AM")
	return &models.Appointment{
		PatientID:       "p1",
		DoctorID:        "d1",
		Date:            "2025-05-08",
		Time:            "10:30 AM",
		AppointmentDate: when,
		Status:          models.AppointmentPending,
		Service:         "consultation",
		Fee:             50,
	}
}

func TestBuildAppointmentUpdate_TimeOnlyUsesStoredDate(t *testing.T) {
	set, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"time": "4:00 PM",
	})
	require.NoError(t, err)

	want := time.Date(2025, 5, 8, 16, 0, 0, 0, time.UTC)
	got, ok := set["appointmentDate"].(time.Time)
	require.True(t, ok, "appointmentDate should be recomputed")
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
	assert.Equal(t, "4:00 PM", set["time"])
	_, dateSet := set["date"]
	assert.False(t, dateSet)
}

func TestBuildAppointmentUpdate_DateOnlyUsesStoredTime(t *testing.T) {
	set, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"date": "2025-06-01",
	})
	require.NoError(t, err)

	want := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	got, ok := set["appointmentDate"].(time.Time)
	require.True(t, ok)
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

func TestBuildAppointmentUpdate_NoDateFieldsLeavesTimestampAlone(t *testing.T) {
	set, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"status": models.AppointmentConfirmed,
		"notes":  "bring previous reports",
	})
	require.NoError(t, err)

	_, recomputed := set["appointmentDate"]
	assert.False(t, recomputed, "appointmentDate must stay untouched")
	assert.Equal(t, models.AppointmentConfirmed, set["status"])
	assert.Equal(t, "bring previous reports", set["notes"])
}

func TestBuildAppointmentUpdate_RejectsUnknownStatus(t *testing.T) {
	_, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"status": "rescheduled",
	})
	require.Error(t, err)
	assert.Equal(t, 400, utils.StatusOf(err))
}

func TestBuildAppointmentUpdate_RejectsNonNumericFee(t *testing.T) {
	_, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"fee": "50",
	})
	require.Error(t, err)
	assert.Equal(t, 400, utils.StatusOf(err))
}

func TestBuildAppointmentUpdate_UpdatesFee(t *testing.T) {
	set, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{
		"fee": 75.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, set["fee"])
}

func TestBuildAppointmentUpdate_EmptyPayload(t *testing.T) {
	_, err := BuildAppointmentUpdate(storedAppointment(), map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, 400, utils.StatusOf(err))
}

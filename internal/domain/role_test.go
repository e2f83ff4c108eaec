package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "user", input: "user", want: RoleUser},
		{name: "manager", input: "manager", want: RoleManager},
		{name: "secretary", input: "secretary", want: RoleSecretary},
		{name: "unknown role rejected", input: "admin", wantErr: true},
		{name: "empty role rejected", input: "", wantErr: true},
		{name: "case sensitive", input: "Manager", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRole_MaxReservationDays(t *testing.T) {
	assert.Equal(t, MaxReservationDaysUser, RoleUser.MaxReservationDays())
	assert.Equal(t, MaxReservationDaysManager, RoleManager.MaxReservationDays())

	// Секретарь бронирует по базовому лимиту
	assert.Equal(t, MaxReservationDaysUser, RoleSecretary.MaxReservationDays())
}

func TestRole_CanRefuseRequests(t *testing.T) {
	assert.False(t, RoleUser.CanRefuseRequests())
	assert.False(t, RoleManager.CanRefuseRequests())
	assert.True(t, RoleSecretary.CanRefuseRequests())
}

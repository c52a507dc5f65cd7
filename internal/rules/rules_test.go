package rules

import (
	"testing"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsPrivileged(t *testing.T) {
	assert.False(t, IsPrivileged(nil))

	undergrad := []domain.Membership{
		{Program: "CS", Role: domain.RoleStudent, Tier: domain.TierUndergraduate},
	}
	assert.False(t, IsPrivileged(undergrad))

	faculty := []domain.Membership{
		{Program: "CS", Role: domain.RoleFaculty, Tier: domain.TierUndergraduate},
	}
	assert.True(t, IsPrivileged(faculty))

	grad := []domain.Membership{
		{Program: "CS", Role: domain.RoleStudent, Tier: domain.TierUndergraduate},
		{Program: "MSc Data", Role: domain.RoleStudent, Tier: domain.TierGraduate},
	}
	assert.True(t, IsPrivileged(grad))
}

func TestRoomAllows(t *testing.T) {
	assert.True(t, RoomAllows(domain.RoomTypeOpen, false))
	assert.True(t, RoomAllows(domain.RoomTypeOpen, true))

	assert.False(t, RoomAllows(domain.RoomTypeGraduate, false))
	assert.True(t, RoomAllows(domain.RoomTypeGraduate, true))

	assert.False(t, RoomAllows(domain.RoomTypeFaculty, false))
	assert.True(t, RoomAllows(domain.RoomTypeFaculty, true))

	assert.False(t, RoomAllows(domain.RoomType("storage"), true))
}

func TestWeekBounds_MondayStart(t *testing.T) {
	// 2025-03-10 is a Monday.
	monday, sunday := WeekBounds(time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), sunday)

	// Mid-week day maps back to the same Monday.
	monday, sunday = WeekBounds(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), sunday)

	// Sunday belongs to the week that started six days earlier.
	monday, sunday = WeekBounds(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), sunday)

	// Monday of the next week is a fresh window.
	monday, _ = WeekBounds(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), monday)
}

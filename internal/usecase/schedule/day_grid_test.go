package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timetable"
)

func kyiv(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, loc)
}

func uintPtr(v uint) *uint { return &v }

func TestBuildDayGridColumnsPerStaff(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.staff = []models.User{
		{ID: 10, SalonID: 1, Name: "Anna", Active: true},
		{ID: 11, SalonID: 1, Name: "Olga", Active: true},
	}
	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 9, 0), EndTime: at(loc, 10, 0),
			Status: "scheduled", Type: "standard",
		},
		{
			ID: 2, SalonID: 1, StaffID: nil,
			StartTime: at(loc, 12, 0), EndTime: at(loc, 13, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewBuildDayGrid(repo, nil)

	grid, err := uc.Execute(context.Background(), domain.DayGridInput{
		SalonID: 1,
		Date:    at(loc, 0, 0),
	})
	require.NoError(t, err)

	require.Equal(t, "2025-03-10", grid.Date)

	// 08:00 through 20:00 at a 30 minute step.
	require.Len(t, grid.Slots, 25)

	// Two staff lanes plus the unassigned one.
	require.Len(t, grid.Columns, 3)
	require.Equal(t, "10", grid.Columns[0].StaffID)
	require.Equal(t, "Anna", grid.Columns[0].StaffName)
	require.Equal(t, "11", grid.Columns[1].StaffID)
	require.Equal(t, timetable.StaffUnassigned, grid.Columns[2].StaffID)
	require.Equal(t, "Unassigned", grid.Columns[2].StaffName)

	// Empty lane still carries the full occupancy mask.
	require.Len(t, grid.Columns[1].Occupied, 25)
	require.Empty(t, grid.Columns[1].Items)

	// Anna's 09:00 booking occupies slots 2 and 3 (09:00, 09:30).
	require.True(t, grid.Columns[0].Occupied[2])
	require.True(t, grid.Columns[0].Occupied[3])
	require.False(t, grid.Columns[0].Occupied[4])
}

func TestBuildDayGridSingleStaffFilter(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.staff = []models.User{
		{ID: 10, SalonID: 1, Name: "Anna", Active: true},
	}
	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 9, 0), EndTime: at(loc, 10, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewBuildDayGrid(repo, nil)

	grid, err := uc.Execute(context.Background(), domain.DayGridInput{
		SalonID: 1,
		Date:    at(loc, 0, 0),
		StaffID: uintPtr(10),
	})
	require.NoError(t, err)

	require.Len(t, grid.Columns, 1)
	require.Equal(t, "10", grid.Columns[0].StaffID)
	require.Len(t, grid.Columns[0].Items, 1)
}

func TestBuildDayGridSynthesizesBreaks(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.staff = []models.User{
		{ID: 10, SalonID: 1, Name: "Anna", Active: true},
	}
	// 10 minute gap between bookings becomes a break block.
	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 9, 0), EndTime: at(loc, 9, 50),
			Status: "scheduled", Type: "standard",
		},
		{
			ID: 2, SalonID: 1, StaffID: uintPtr(10),
			StartTime: at(loc, 10, 0), EndTime: at(loc, 11, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewBuildDayGrid(repo, nil)

	grid, err := uc.Execute(context.Background(), domain.DayGridInput{
		SalonID: 1,
		Date:    at(loc, 0, 0),
	})
	require.NoError(t, err)

	items := grid.Columns[0].Items
	require.Len(t, items, 3)
	require.Equal(t, timetable.KindBreak, items[1].Kind)
	require.Equal(t, "09:50", items[1].Start)
	require.Equal(t, "10:00", items[1].End)
}

func TestBuildDayGridKeepsLaneForDeactivatedStaff(t *testing.T) {
	repo := newFakeRepo()
	loc := kyiv(t)

	repo.staff = []models.User{
		{ID: 10, SalonID: 1, Name: "Anna", Active: true},
	}
	// Booking for staff 99 who is no longer in the active roster.
	repo.appointments = []models.Appointment{
		{
			ID: 1, SalonID: 1, StaffID: uintPtr(99),
			StartTime: at(loc, 9, 0), EndTime: at(loc, 10, 0),
			Status: "scheduled", Type: "standard",
		},
	}

	uc := NewBuildDayGrid(repo, nil)

	grid, err := uc.Execute(context.Background(), domain.DayGridInput{
		SalonID: 1,
		Date:    at(loc, 0, 0),
	})
	require.NoError(t, err)

	require.Len(t, grid.Columns, 2)
	require.Equal(t, "99", grid.Columns[1].StaffID)
	require.Len(t, grid.Columns[1].Items, 1)
}

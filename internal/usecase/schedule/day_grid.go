package schedule

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/cache"
	domain "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/domain/schedule"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/dto"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/models"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timetable"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/timezone"
)

// BuildDayGrid assembles the render-ready day view: one column per
// staff member plus the unassigned lane, each run through break
// synthesis and overlap packing, sharing one slot axis.
type BuildDayGrid struct {
	repo  domain.Repository
	cache *cache.GridCache
}

func NewBuildDayGrid(repo domain.Repository, c *cache.GridCache) *BuildDayGrid {
	return &BuildDayGrid{repo: repo, cache: c}
}

func (uc *BuildDayGrid) Execute(
	ctx context.Context,
	in domain.DayGridInput,
) (*dto.DayGridDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)
	dateStr := dayStart.Format("2006-01-02")

	var cached dto.DayGridDTO
	if uc.cache.GetDayGrid(ctx, in.SalonID, dateStr, in.StaffID, &cached) {
		return &cached, nil
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.SalonID,
		in.StaffID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	cfg := gridConfigFor(salon)
	slots := timetable.Slots(cfg)

	// Group by staff column. Every active staff member gets a column
	// even when empty; the unassigned lane appears only when needed
	// (or when explicitly requested).
	byColumn := make(map[string][]timetable.Appointment)
	for _, ap := range appointments {
		item := toGridAppointment(ap, loc)
		byColumn[item.StaffID] = append(byColumn[item.StaffID], item)
	}

	columns := make([]dto.StaffColumnDTO, 0, len(byColumn)+1)

	if in.StaffID != nil {
		key := strconv.FormatUint(uint64(*in.StaffID), 10)
		columns = append(columns, uc.buildColumn(key, "", byColumn[key], salon, cfg, slots))
	} else {
		staff, err := uc.repo.ListStaff(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}

		for _, member := range staff {
			key := strconv.FormatUint(uint64(member.ID), 10)
			columns = append(columns, uc.buildColumn(key, member.Name, byColumn[key], salon, cfg, slots))
			delete(byColumn, key)
		}

		if items, ok := byColumn[timetable.StaffUnassigned]; ok {
			columns = append(columns, uc.buildColumn(timetable.StaffUnassigned, "Unassigned", items, salon, cfg, slots))
			delete(byColumn, timetable.StaffUnassigned)
		}

		// Bookings referencing deactivated staff still need a lane.
		leftover := make([]string, 0, len(byColumn))
		for key := range byColumn {
			leftover = append(leftover, key)
		}
		sort.Strings(leftover)
		for _, key := range leftover {
			columns = append(columns, uc.buildColumn(key, "", byColumn[key], salon, cfg, slots))
		}
	}

	grid := &dto.DayGridDTO{
		Date:    dateStr,
		Slots:   slots,
		Columns: columns,
	}

	uc.cache.SetDayGrid(ctx, in.SalonID, dateStr, in.StaffID, grid)

	return grid, nil
}

func (uc *BuildDayGrid) buildColumn(
	staffID string,
	staffName string,
	items []timetable.Appointment,
	salon *models.Salon,
	cfg timetable.GridConfig,
	slots []timetable.Slot,
) dto.StaffColumnDTO {

	augmented := timetable.WithBreaks(items, salon.BreakGapMinutes)

	occupied := make([]bool, len(slots))
	for i, s := range slots {
		occupied[i] = timetable.SlotOccupied(augmented, s.Hour, s.Minute, cfg.StepMinutes)
	}

	return dto.StaffColumnDTO{
		StaffID:   staffID,
		StaffName: staffName,
		Items:     timetable.Layout(augmented, cfg),
		Occupied:  occupied,
	}
}

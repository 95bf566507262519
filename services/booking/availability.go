package booking

import (
	"context"

	"roomly/models"
)

// AvailableDates lists the dates in [from, to] on which the package has at
// least one bookable slot in any allowed room. Per date this is an existence
// check over a coarse probe grid stepped by the package's full block
// (duration + cleanup); it stops at the first free probe.
func (e *DefaultBookingEngine) AvailableDates(ctx context.Context, packageID, from, to string) ([]string, error) {
	e.sweepStalePending(ctx)

	pkg, err := e.Catalog.GetPackage(ctx, packageID)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if pkg == nil {
		return nil, NewNotFound("package", "unknown package: "+packageID)
	}

	start, err := e.Policy.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := e.Policy.ParseDate(to)
	if err != nil {
		return nil, err
	}

	holidays, err := e.Catalog.ListHolidays(ctx, from, to)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date] = true
	}

	block := e.Policy.BlockFor(pkg)
	now := e.Now()
	var dates []string

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		if holidaySet[dateStr] {
			continue
		}

		open, closing := e.Policy.WorkWindow(d)
		earliest := e.Policy.EarliestStart(d, now)
		if earliest > open {
			open = earliest
		}
		if open+block > closing {
			continue
		}

		free, err := e.anySlotFree(ctx, pkg, dateStr, open, closing, block, block, "")
		if err != nil {
			return nil, err
		}
		if free {
			dates = append(dates, dateStr)
		}
	}
	return dates, nil
}

// AvailableTimes lists the start times ("HH:MM") on date with at least one
// free allowed room, on the fine slot grid. See AvailabilityOptions for the
// reschedule knobs.
func (e *DefaultBookingEngine) AvailableTimes(ctx context.Context, packageID, date string, opts AvailabilityOptions) ([]string, error) {
	e.sweepStalePending(ctx)

	pkg, err := e.Catalog.GetPackage(ctx, packageID)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if pkg == nil {
		return nil, NewNotFound("package", "unknown package: "+packageID)
	}

	day, err := e.Policy.ParseDate(date)
	if err != nil {
		return nil, err
	}

	holidays, err := e.Catalog.ListHolidays(ctx, date, date)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if len(holidays) > 0 {
		return nil, nil
	}

	ref := e.Now()
	if opts.ReferenceTime != nil {
		ref = *opts.ReferenceTime
	}

	open, closing := e.Policy.WorkWindow(day)
	earliest := e.Policy.EarliestStart(day, ref)
	block := e.Policy.BlockFor(pkg)

	// Same-day bookings for every allowed room, fetched once and grouped,
	// so the grid scan does not hammer the store.
	byRoom, err := e.roomBookings(ctx, pkg, date)
	if err != nil {
		return nil, err
	}

	var times []string
	for t := open; t+block <= closing; t += e.Policy.SlotStep {
		if t < earliest {
			continue
		}
		if e.anyRoomFree(pkg, byRoom, Interval{Start: t, End: t + block}, opts.ExcludeBookingID) {
			times = append(times, models.MinutesToClock(t))
		}
	}
	return times, nil
}

// roomBookings loads the active same-day bookings for all of the package's
// allowed rooms, grouped by room.
func (e *DefaultBookingEngine) roomBookings(ctx context.Context, pkg *models.Package, date string) (map[string][]models.Booking, error) {
	all, err := e.Bookings.ListActiveByRoomsDate(ctx, pkg.AllowedRoomIDs, date)
	if err != nil {
		return nil, NewUpstream("store", "failed to load bookings: "+err.Error())
	}
	byRoom := make(map[string][]models.Booking)
	for _, b := range all {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}
	return byRoom, nil
}

func (e *DefaultBookingEngine) anyRoomFree(pkg *models.Package, byRoom map[string][]models.Booking, candidate Interval, excludeID string) bool {
	for _, roomID := range pkg.AllowedRoomIDs {
		free := true
		for _, b := range byRoom[roomID] {
			if b.ID == excludeID {
				continue
			}
			if Overlaps(candidate, Interval{Start: b.Start, End: b.End}) {
				free = false
				break
			}
		}
		if free {
			return true
		}
	}
	return false
}

// anySlotFree probes the [open, closing) window on a step grid and reports
// whether any probe has a free allowed room.
func (e *DefaultBookingEngine) anySlotFree(ctx context.Context, pkg *models.Package, date string, open, closing, block, step int, excludeID string) (bool, error) {
	byRoom, err := e.roomBookings(ctx, pkg, date)
	if err != nil {
		return false, err
	}
	for t := open; t+block <= closing; t += step {
		if e.anyRoomFree(pkg, byRoom, Interval{Start: t, End: t + block}, excludeID) {
			return true, nil
		}
	}
	return false, nil
}

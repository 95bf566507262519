package booking

import (
	"context"

	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

type allocOpts struct {
	// preferredRoom, when set and allowed for the package, is tried first
	// (sticky-room preference on reschedule).
	preferredRoom string
	// excludeBookingID keeps the named booking's own interval out of the
	// conflict checks.
	excludeBookingID string
}

// roomOrder returns the candidate rooms for a package in allocation order:
// the explicit priority list when present, the allowed list otherwise, with
// the preferred room moved to the front. Only rooms allowed for the package
// survive.
func roomOrder(pkg *models.Package, preferred string) []string {
	allowed := make(map[string]bool, len(pkg.AllowedRoomIDs))
	for _, id := range pkg.AllowedRoomIDs {
		allowed[id] = true
	}

	base := pkg.RoomPriority
	if len(base) == 0 {
		base = pkg.AllowedRoomIDs
	}

	order := make([]string, 0, len(base))
	if preferred != "" && allowed[preferred] {
		order = append(order, preferred)
	}
	for _, id := range base {
		if !allowed[id] || id == preferred {
			continue
		}
		order = append(order, id)
	}
	return order
}

// selectRoom picks the first room in priority order with no conflicting
// active booking for the candidate interval. Deterministic: identical inputs
// and identical stored bookings always yield the same room.
func (e *DefaultBookingEngine) selectRoom(
	ctx context.Context,
	pkg *models.Package,
	date string,
	start int,
	opts allocOpts,
) (string, error) {
	logger := utils.GetLogger()
	candidate := Interval{Start: start, End: start + e.Policy.BlockFor(pkg)}

	for _, roomID := range roomOrder(pkg, opts.preferredRoom) {
		existing, err := e.Bookings.ListActiveByRoomDate(ctx, roomID, date)
		if err != nil {
			return "", NewUpstream("store", "failed to load room bookings: "+err.Error())
		}

		free := true
		for _, b := range existing {
			if b.ID == opts.excludeBookingID {
				continue
			}
			if Overlaps(candidate, Interval{Start: b.Start, End: b.End}) {
				free = false
				break
			}
		}
		if free {
			logger.Debug("room allocated",
				zap.String("packageId", pkg.ID), zap.String("date", date),
				zap.Int("start", start), zap.String("roomId", roomID))
			return roomID, nil
		}
	}
	return "", NewConflict("noRoomAvailable", "no room free for the requested slot")
}

package booking

import (
	"time"

	"roomly/config"
	"roomly/models"
)

// CalendarPolicy derives the bookable window for a civil date. Weekdays and
// weekends open at different times; closing time is shared. All minutes are
// from midnight in the configured timezone.
type CalendarPolicy struct {
	WeekdayOpen    int
	WeekendOpen    int
	Close          int
	LeadTime       int // minimum minutes between "now" and a session start
	SlotStep       int // fine grid step for time listings
	DefaultCleanup int // fallback when a package record carries no cleanup
	Location       *time.Location
}

// PolicyFromConfig builds the calendar policy from the loaded app config.
func PolicyFromConfig() CalendarPolicy {
	return CalendarPolicy{
		WeekdayOpen:    config.AppConfig.WeekdayOpenMinutes,
		WeekendOpen:    config.AppConfig.WeekendOpenMinutes,
		Close:          config.AppConfig.CloseMinutes,
		LeadTime:       config.AppConfig.LeadTimeMinutes,
		SlotStep:       config.AppConfig.SlotStepMinutes,
		DefaultCleanup: config.AppConfig.DefaultCleanupMinutes,
		Location:       config.Location,
	}
}

// ParseDate parses a "YYYY-MM-DD" string in the policy's timezone.
func (p CalendarPolicy) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, p.Location)
	if err != nil {
		return time.Time{}, NewValidation("badDate", "invalid date: "+s)
	}
	return d, nil
}

// WorkWindow returns the open/close minutes for a date.
func (p CalendarPolicy) WorkWindow(d time.Time) (int, int) {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return p.WeekendOpen, p.Close
	default:
		return p.WeekdayOpen, p.Close
	}
}

// EarliestStart computes the first minute a session may start on date, given
// the reference instant ref (usually "now"). Dates after ref's civil date are
// unconstrained beyond the opening time. When the lead time pushes past
// closing the returned value exceeds Close and the caller finds no slots.
func (p CalendarPolicy) EarliestStart(date time.Time, ref time.Time) int {
	open, closing := p.WorkWindow(date)
	refDay := ref.In(p.Location).Format("2006-01-02")
	switch {
	case date.Format("2006-01-02") > refDay:
		return open
	case date.Format("2006-01-02") < refDay:
		return closing + 1 // past dates yield nothing
	}
	local := ref.In(p.Location)
	earliest := local.Hour()*60 + local.Minute() + p.LeadTime
	if earliest < open {
		return open
	}
	return earliest
}

// CleanupFor returns the package-specific cleanup buffer, falling back to
// the configured default when the record carries none.
func (p CalendarPolicy) CleanupFor(pkg *models.Package) int {
	if pkg.CleanupMinutes > 0 {
		return pkg.CleanupMinutes
	}
	return p.DefaultCleanup
}

// BlockFor returns the full room-occupancy span in minutes for a package:
// session duration plus cleanup.
func (p CalendarPolicy) BlockFor(pkg *models.Package) int {
	return pkg.DurationMinutes + p.CleanupFor(pkg)
}

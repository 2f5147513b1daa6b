package doctor

import (
	"fmt"
	"strconv"
	"time"
)

// Doctor maps to the doctors table. Doctors are provisioned out-of-band;
// the API reads and searches them.
type Doctor struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Specialty    string `db:"specialty" json:"specialty"`
	Location     string `db:"location" json:"location"`
	Phone        string `db:"phone" json:"phone"`
	Email        string `db:"email" json:"email"`
	Bio          string `db:"bio" json:"bio"`
	ImageURL     string `db:"image_url" json:"image_url"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Schedule is one weekly working window for a doctor. Times are stored in
// their wire form ("HH:MM", 24-hour); the only computation ever done on them
// is extracting the hour for timeslot derivation.
type Schedule struct {
	ID        int64  `db:"id" json:"-"`
	DoctorID  int64  `db:"doctor_id" json:"-"`
	DayOfWeek int    `db:"day_of_week" json:"day"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

// Timeslot is a derived one-hour interval, not a stored entity.
type Timeslot struct {
	Day       int    `json:"day"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ScheduleEntry is one day's window in a schedule replacement request.
type ScheduleEntry struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ParseClock validates an "HH:MM" 24-hour time string and returns its hour.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return t.Hour(), nil
}

// Timeslots derives hourly slots from schedule rows: one slot per whole hour
// in [start_hour, end_hour), tagged with the row's day of week. Sub-hour
// components are ignored and every slot is reported available; booked
// appointments are not subtracted here.
func Timeslots(schedules []*Schedule) []Timeslot {
	slots := []Timeslot{}
	for _, sch := range schedules {
		startHour, err := ParseClock(sch.StartTime)
		if err != nil {
			continue
		}
		endHour, err := ParseClock(sch.EndTime)
		if err != nil {
			continue
		}
		for hour := startHour; hour < endHour; hour++ {
			slots = append(slots, Timeslot{
				Day:       sch.DayOfWeek,
				Time:      fmt.Sprintf("%02d:00", hour),
				Available: true,
			})
		}
	}
	return slots
}

// normalizeEntries validates a replacement request and flattens it into
// schedule rows. Keys are day-of-week digits 0-6; every entry needs both a
// start and an end time in HH:MM form.
func normalizeEntries(doctorID int64, entries map[string]ScheduleEntry) ([]*Schedule, error) {
	rows := make([]*Schedule, 0, len(entries))
	for dayKey, entry := range entries {
		day, err := strconv.Atoi(dayKey)
		if err != nil || day < 0 || day > 6 {
			return nil, ErrInvalidScheduleItem
		}
		if entry.StartTime == "" || entry.EndTime == "" {
			return nil, ErrInvalidScheduleItem
		}
		if _, err := ParseClock(entry.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if _, err := ParseClock(entry.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		rows = append(rows, &Schedule{
			DoctorID:  doctorID,
			DayOfWeek: day,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		})
	}
	return rows, nil
}

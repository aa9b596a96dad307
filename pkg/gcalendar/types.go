package gcalendar

import "time"

// CreateEventRequest describes the event created for a task deadline.
// AllDay events only use the date of StartTime; EndTime and Timezone are ignored.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
	AllDay      bool
}

// Event is the part of a calendar event this service reads back.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest selects single events starting in [TimeMin, TimeMax).
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

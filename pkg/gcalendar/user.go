package gcalendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

const maxSameDayEvents = 50

// UserCalendar creates events in the calendars of signed-in users.
// Each call opens a client on the user's own refreshed token.
type UserCalendar struct {
	oauth *oauth2.Config
	opts  []option.ClientOption
}

// NewUserCalendar builds a UserCalendar refreshing tokens through oauth.
func NewUserCalendar(oauth *oauth2.Config, opts ...option.ClientOption) *UserCalendar {
	return &UserCalendar{oauth: oauth, opts: opts}
}

// CreateEvent inserts an event on behalf of the owner of tok. An all-day event
// with the same summary already on that date is returned instead of a duplicate.
func (u *UserCalendar) CreateEvent(ctx context.Context, tok *oauth2.Token, req CreateEventRequest) (*Event, error) {
	client, err := NewClientFromTokenSource(ctx, u.oauth.TokenSource(ctx, tok), u.opts...)
	if err != nil {
		return nil, err
	}

	if req.AllDay {
		day := time.Date(req.StartTime.Year(), req.StartTime.Month(), req.StartTime.Day(), 0, 0, 0, 0, time.UTC)
		existing, err := client.ListEvents(ctx, ListEventsRequest{
			CalendarID: req.CalendarID,
			TimeMin:    day,
			TimeMax:    day.AddDate(0, 0, 1),
			MaxResults: maxSameDayEvents,
		})
		if err != nil {
			return nil, err
		}
		for i := range existing {
			if existing[i].Summary == req.Summary {
				return &existing[i], nil
			}
		}
	}

	return client.CreateEvent(ctx, req)
}

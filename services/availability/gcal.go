package availability

import (
	"context"
	"fmt"
	"time"

	"hostly/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// BusyTimeSource fetches the host's external busy intervals for a window.
// credential is the host's stored OAuth refresh token; acquisition happens
// in the onboarding flow.
type BusyTimeSource interface {
	BusyIntervals(ctx context.Context, credential string, from, to time.Time) ([]models.BusyInterval, error)
}

// GoogleCalendarSource queries the freebusy endpoint of the host's primary
// calendar. Read-only: this system never writes events back.
type GoogleCalendarSource struct {
	ClientID     string
	ClientSecret string
}

func NewGoogleCalendarSource(clientID, clientSecret string) *GoogleCalendarSource {
	return &GoogleCalendarSource{ClientID: clientID, ClientSecret: clientSecret}
}

func (s *GoogleCalendarSource) BusyIntervals(ctx context.Context, credential string, from, to time.Time) ([]models.BusyInterval, error) {
	conf := &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}
	tokenSource := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: credential})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}

	resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: "primary"}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars["primary"]
	if !ok {
		return nil, nil
	}

	intervals := make([]models.BusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("unparseable busy period start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("unparseable busy period end %q: %w", period.End, err)
		}
		intervals = append(intervals, models.BusyInterval{Start: start, End: end})
	}
	return intervals, nil
}

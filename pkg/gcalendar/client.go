package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertAllDayEvent replaces the event with req.EventID, creating it when it does not exist yet.
func (c *Client) UpsertAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error) {
	if req.EventID == "" {
		return nil, errors.New("event id is required")
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendar
	}

	event := &calendar.Event{
		Id:          req.EventID,
		Summary:     req.Summary,
		Description: req.Description,
		// All-day events end on the following (exclusive) date.
		Start: &calendar.EventDateTime{Date: req.Date.Format(dateLayout)},
		End:   &calendar.EventDateTime{Date: req.Date.AddDate(0, 0, 1).Format(dateLayout)},
	}

	saved, err := c.service.Events.Update(calendarID, req.EventID, event).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
			return nil, fmt.Errorf("failed to update calendar event: %w", err)
		}

		saved, err = c.service.Events.Insert(calendarID, event).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar event: %w", err)
		}
	}

	return &Event{
		ID:       saved.Id,
		Summary:  saved.Summary,
		HtmlLink: saved.HtmlLink,
		Date:     event.Start.Date,
	}, nil
}

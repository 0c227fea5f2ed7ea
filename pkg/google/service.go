package google

import (
	"context"
	"fmt"
	"time"

	"github.com/resourceflow/resourceflow/pkg/holiday"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrUnauthenticated = fmt.Errorf("not connected to Google, authentication is required")

type CalendarItem struct {
	ID      string
	Summary string
}

type Service interface {
	ListCalendars(ctx context.Context) ([]CalendarItem, error)
	ImportHolidays(ctx context.Context, calendarId string, from, to time.Time, country holiday.Country) ([]holiday.Holiday, error)
}

type ServiceImpl struct {
	auth        *GoogleAuth
	holidayRepo holiday.HolidayRepo
}

func NewService(auth *GoogleAuth, holidayRepo holiday.HolidayRepo) *ServiceImpl {
	return &ServiceImpl{
		auth:        auth,
		holidayRepo: holidayRepo,
	}
}

func (s *ServiceImpl) ListCalendars(ctx context.Context) ([]CalendarItem, error) {
	googleService, err := s.prepareGoogleService(ctx)
	if err != nil {
		return nil, err
	}
	calendars, err := googleService.CalendarList.List().Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve calendars from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}
	var googleCalendars []CalendarItem
	for _, cal := range calendars.Items {
		googleCalendars = append(googleCalendars, CalendarItem{
			ID:      cal.Id,
			Summary: cal.Summary,
		})
	}
	return googleCalendars, nil
}

// ImportHolidays reads all-day events from the given calendar between from and
// to (inclusive) and stores each as a holiday for the given country. Events
// whose date and name already exist are skipped, so repeated imports of the
// same public holiday calendar stay idempotent.
func (s *ServiceImpl) ImportHolidays(
	ctx context.Context,
	calendarId string,
	from, to time.Time,
	country holiday.Country,
) ([]holiday.Holiday, error) {
	googleService, err := s.prepareGoogleService(ctx)
	if err != nil {
		return nil, err
	}

	events, err := googleService.Events.List(calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.AddDate(0, 0, 1).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	existing, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing holidays: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, h := range existing {
		known[h.Date.Format("2006-01-02")+"|"+h.Name] = true
	}

	var imported []holiday.Holiday
	for _, item := range events.Items {
		if item.Start == nil || item.Start.Date == "" {
			// timed event, not a holiday
			continue
		}
		date, err := time.Parse("2006-01-02", item.Start.Date)
		if err != nil {
			log.Warnf("skipping event with unparseable date %q: %s", item.Start.Date, item.Summary)
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		if known[item.Start.Date+"|"+item.Summary] {
			log.Debugf("skipping already imported holiday: %s (%s)", item.Summary, item.Start.Date)
			continue
		}

		h := holiday.Holiday{
			Name:    item.Summary,
			Date:    date,
			Country: country,
		}
		id, err := s.holidayRepo.Store(ctx, h)
		if err != nil {
			return nil, fmt.Errorf("failed to store imported holiday %q: %w", h.Name, err)
		}
		h.ID = id
		imported = append(imported, h)
	}

	log.Infof("imported %d holiday(s) from calendar %s", len(imported), calendarId)
	return imported, nil
}

func (s *ServiceImpl) prepareGoogleService(ctx context.Context) (*calendar.Service, error) {
	client, err := s.auth.getClient(ctx)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("no Google token stored, authentication is required")
		return nil, ErrUnauthenticated
	}
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	return service, nil
}

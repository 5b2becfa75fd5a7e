package services

import (
	"testing"
	"time"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/realtime"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecordPingBroadcastsToSubscribers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "route_id", "vehicle_id", "driver_id", "departure_time", "arrival_time",
			"available_seats", "total_seats", "status", "created_at",
		}).AddRow(7, 10, 20, 30, time.Now(), time.Now(), 5, 12, "active", time.Now()))
	mock.ExpectExec("INSERT INTO live_tracking").
		WithArgs(int64(7), "23.3441", "85.3096", nil, nil).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("FROM live_tracking").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "schedule_id", "latitude", "longitude", "speed", "heading", "recorded_at",
		}).AddRow(5, 7, "23.3441", "85.3096", "", "", time.Now()))

	notifier := &recordingNotifier{}
	svc := TrackingService{DB: db, Notifier: notifier}

	stored, err := svc.RecordPing(models.LiveTracking{
		ScheduleID: 7,
		Latitude:   "23.3441",
		Longitude:  "85.3096",
	})
	if err != nil {
		t.Fatalf("record ping error: %v", err)
	}
	if stored.ID != 5 {
		t.Fatalf("stored id = %d", stored.ID)
	}
	events := notifier.tracking[7]
	if len(events) != 1 {
		t.Fatalf("expected 1 tracking event, got %d", len(events))
	}
	event, ok := events[0].(realtime.TrackingUpdateEvent)
	if !ok || event.ScheduleID != 7 || event.Location.Latitude != 23.3441 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPingRejectsBadCoordinates(t *testing.T) {
	cases := []models.LiveTracking{
		{ScheduleID: 7, Latitude: "abc", Longitude: "85.0"},
		{ScheduleID: 7, Latitude: "91.0", Longitude: "85.0"},
		{ScheduleID: 7, Latitude: "23.0", Longitude: "181.0"},
		{Latitude: "23.0", Longitude: "85.0"},
	}
	for i, ping := range cases {
		if _, err := (TrackingService{}).RecordPing(ping); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestRecordPingUnknownSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := TrackingService{DB: db}
	ping := models.LiveTracking{ScheduleID: 99, Latitude: "23.0", Longitude: "85.0"}
	if _, err := svc.RecordPing(ping); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

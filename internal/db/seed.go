package db

import (
	"database/sql"
	"log"
	"time"
)

// Seed loads demo data on an empty database so the app is explorable
// without an operator console. No-op when cities already exist.
func Seed(dbc *sql.DB) error {
	var n int
	if err := dbc.QueryRow(`SELECT COUNT(*) FROM cities`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("seeding demo data")

	cities := []struct {
		name, code string
	}{
		{"Ranchi", "RAN"},
		{"Bokaro", "BOK"},
		{"Dhanbad", "DHN"},
		{"Hazaribagh", "HZB"},
		{"Ramgarh", "RMG"},
	}
	for _, c := range cities {
		if _, err := dbc.Exec(`INSERT INTO cities (name, code) VALUES (?, ?)`, c.name, c.code); err != nil {
			return err
		}
	}

	routes := []struct {
		from, to                 int64
		name, code               string
		distance                 string
		duration                 int
		baseFare, distanceFare   string
	}{
		{1, 2, "Ranchi - Bokaro Express", "RAN-BOK", "85.00", 135, "75.00", "1.00"},
		{1, 3, "Ranchi - Dhanbad Direct", "RAN-DHN", "120.00", 210, "100.00", "1.50"},
	}
	for _, r := range routes {
		if _, err := dbc.Exec(`
			INSERT INTO routes (from_city_id, to_city_id, name, code, distance, estimated_duration, base_fare, distance_fare)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.from, r.to, r.name, r.code, r.distance, r.duration, r.baseFare, r.distanceFare); err != nil {
			return err
		}
	}

	stops := []struct {
		routeID          int64
		name, code       string
		order, arrival   int
		fareFromStart    string
	}{
		{1, "Ranchi Main Bus Stand", "RAN-MBS", 1, 0, "0.00"},
		{1, "Ramgarh Chowk", "RMG-CHK", 2, 45, "30.00"},
		{1, "Bokaro Steel City", "BOK-SC", 3, 135, "75.00"},
		{2, "Ranchi Main Bus Stand", "RAN-MBS", 1, 0, "0.00"},
		{2, "Bokaro Steel City", "BOK-SC", 2, 120, "60.00"},
		{2, "Dhanbad Bus Stand", "DHN-BS", 3, 210, "100.00"},
	}
	for _, s := range stops {
		if _, err := dbc.Exec(`
			INSERT INTO stops (route_id, name, code, stop_order, estimated_arrival, fare_from_start)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.routeID, s.name, s.code, s.order, s.arrival, s.fareFromStart); err != nil {
			return err
		}
	}

	if _, err := dbc.Exec(`
		INSERT INTO vehicles (registration_number, model, capacity, seat_rows, seat_columns, amenities)
		VALUES (?, ?, ?, ?, ?, ?)`,
		"RJ14 GH 5678", "Tata Starbus", 20, 5, 4, `["AC","WiFi","USB Charging"]`); err != nil {
		return err
	}
	if _, err := dbc.Exec(`
		INSERT INTO vehicles (registration_number, model, capacity, amenities)
		VALUES (?, ?, ?, ?)`,
		"JH01 AB 1234", "Force Traveller", 12, `["AC","GPS"]`); err != nil {
		return err
	}

	if _, err := dbc.Exec(`
		INSERT INTO drivers (name, phone, license_number, rating)
		VALUES (?, ?, ?, ?)`,
		"Rajesh Kumar", "9876543210", "JH-2020-0012345", "4.80"); err != nil {
		return err
	}
	if _, err := dbc.Exec(`
		INSERT INTO drivers (name, phone, license_number, rating)
		VALUES (?, ?, ?, ?)`,
		"Amit Singh", "9876501234", "JH-2021-0067890", "4.50"); err != nil {
		return err
	}

	depart := time.Now().Add(4 * time.Hour).Truncate(time.Hour)
	schedules := []struct {
		routeID, vehicleID, driverID int64
		depart                       time.Time
		duration                     time.Duration
		available, total             int
	}{
		{1, 1, 1, depart, 135 * time.Minute, 12, 20},
		{2, 2, 2, depart.Add(2 * time.Hour), 210 * time.Minute, 12, 12},
	}
	for _, s := range schedules {
		if _, err := dbc.Exec(`
			INSERT INTO schedules (route_id, vehicle_id, driver_id, departure_time, arrival_time, available_seats, total_seats, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, 'scheduled')`,
			s.routeID, s.vehicleID, s.driverID, s.depart, s.depart.Add(s.duration), s.available, s.total); err != nil {
			return err
		}
	}

	smsCodes := []struct {
		routeID     int64
		code, descr string
	}{
		{1, "RANBOK", "SMS RANBOK <seats> to book Ranchi - Bokaro"},
		{2, "RANDHN", "SMS RANDHN <seats> to book Ranchi - Dhanbad"},
	}
	for _, c := range smsCodes {
		if _, err := dbc.Exec(`
			INSERT INTO sms_booking_codes (route_id, code, description) VALUES (?, ?, ?)`,
			c.routeID, c.code, c.descr); err != nil {
			return err
		}
	}

	return nil
}

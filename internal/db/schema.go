package db

import (
	"database/sql"
	"strings"
)

// Bootstrap creates missing tables on startup. The unique key on
// (schedule_id, seat_number, seat_lock) is the storage-level guard against
// double booking: seat_lock is 1 while a booking is live and NULL once it
// is cancelled, and NULLs never collide in a MySQL unique key, so a freed
// seat can be resold.
func Bootstrap(dbc *sql.DB) error {
	for _, ddl := range schemaDDL {
		if name := tableName(ddl); name != "" && HasTable(dbc, name) {
			continue
		}
		if _, err := dbc.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func tableName(ddl string) string {
	const marker = "CREATE TABLE IF NOT EXISTS "
	i := strings.Index(ddl, marker)
	if i < 0 {
		return ""
	}
	rest := ddl[i+len(marker):]
	if j := strings.IndexAny(rest, " ("); j > 0 {
		return rest[:j]
	}
	return ""
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS cities (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		code VARCHAR(10) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_city_code (code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS routes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		from_city_id BIGINT NOT NULL,
		to_city_id BIGINT NOT NULL,
		name VARCHAR(200) NOT NULL,
		code VARCHAR(20) NOT NULL,
		distance DECIMAL(8,2) NOT NULL,
		estimated_duration INT NOT NULL,
		base_fare DECIMAL(8,2) NOT NULL,
		distance_fare DECIMAL(8,2) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_route_code (code),
		KEY idx_route_cities (from_city_id, to_city_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS stops (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_id BIGINT NOT NULL,
		name VARCHAR(200) NOT NULL,
		code VARCHAR(20) NOT NULL,
		latitude DECIMAL(10,8) NULL,
		longitude DECIMAL(11,8) NULL,
		stop_order INT NOT NULL,
		estimated_arrival INT NOT NULL,
		fare_from_start DECIMAL(8,2) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		KEY idx_stop_route (route_id, stop_order)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		registration_number VARCHAR(20) NOT NULL,
		model VARCHAR(100) NOT NULL,
		capacity INT NOT NULL,
		seat_rows INT NOT NULL DEFAULT 0,
		seat_columns INT NOT NULL DEFAULT 0,
		amenities JSON NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_vehicle_reg (registration_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS drivers (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		license_number VARCHAR(50) NOT NULL,
		rating DECIMAL(3,2) NOT NULL DEFAULT 0.00,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_driver_phone (phone),
		UNIQUE KEY uniq_driver_license (license_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_id BIGINT NOT NULL,
		vehicle_id BIGINT NOT NULL,
		driver_id BIGINT NOT NULL,
		departure_time DATETIME NOT NULL,
		arrival_time DATETIME NOT NULL,
		available_seats INT NOT NULL,
		total_seats INT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		KEY idx_schedule_route (route_id, departure_time),
		KEY idx_schedule_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS passengers (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		email VARCHAR(100) NULL,
		age INT NULL,
		preferred_language VARCHAR(5) NOT NULL DEFAULT 'en',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_passenger_phone (phone)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		schedule_id BIGINT NOT NULL,
		passenger_id BIGINT NOT NULL,
		from_stop_id BIGINT NOT NULL,
		to_stop_id BIGINT NOT NULL,
		seat_number VARCHAR(10) NOT NULL,
		total_fare DECIMAL(8,2) NOT NULL,
		booking_type VARCHAR(20) NOT NULL,
		payment_method VARCHAR(20) NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		booking_status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		qr_code VARCHAR(100) NOT NULL,
		seat_lock TINYINT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_schedule_seat (schedule_id, seat_number, seat_lock),
		KEY idx_booking_schedule (schedule_id),
		KEY idx_booking_passenger (passenger_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS live_tracking (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		schedule_id BIGINT NOT NULL,
		latitude DECIMAL(10,8) NOT NULL,
		longitude DECIMAL(11,8) NOT NULL,
		speed DECIMAL(5,2) NULL,
		heading DECIMAL(5,2) NULL,
		recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		KEY idx_tracking_schedule (schedule_id, recorded_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_id BIGINT NOT NULL,
		rating INT NOT NULL,
		comment TEXT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		KEY idx_feedback_booking (booking_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS sms_booking_codes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_id BIGINT NOT NULL,
		code VARCHAR(10) NOT NULL,
		description TEXT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		UNIQUE KEY uniq_sms_code (code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NULL,
		password_hash VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_user_email (email),
		UNIQUE KEY uniq_user_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

package queries

const (
	QueryCreateReservation = `
		INSERT INTO reservations (start_at, end_at, user_id, room_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	// общий SELECT для view; WHERE/ORDER дописываются в репозитории
	QuerySelectReservationView = `
		SELECT r.id, r.start_at, r.end_at, r.user_id, r.room_id, r.status, r.created_at, r.updated_at,
		       u.name, rm.number
		FROM reservations AS r
		JOIN users AS u ON u.id = r.user_id
		JOIN rooms AS rm ON rm.id = r.room_id
	`
	QueryUpdateReservationStatus = `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1;
	`
)

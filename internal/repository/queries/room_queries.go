package queries

const (
	QueryCreateRoom = `
		INSERT INTO rooms (number, capacity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	QueryGetRoomByID = `
		SELECT id, number, capacity, active, created_at, updated_at
		FROM rooms
		WHERE id = $1;
	`
	QueryGetRoomByNumber = `
		SELECT id, number, capacity, active, created_at, updated_at
		FROM rooms
		WHERE number = $1;
	`
	QueryListActiveRooms = `
		SELECT id, number, capacity, active, created_at, updated_at
		FROM rooms
		WHERE active = TRUE;
	`
	QueryUpdateRoom = `
		UPDATE rooms
		SET number = $2, capacity = $3, active = $4, updated_at = $5
		WHERE id = $1;
	`
)

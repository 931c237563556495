package queries

const (
	QueryCreateUser = `
		INSERT INTO users (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	QueryGetUserByID = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	QueryGetUserByName = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE name = $1;
	`
	QueryGetUserByEmail = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	QueryExistsUserByName  = `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1);`
	QueryExistsUserByEmail = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1);`
	QueryListUsers         = `
		SELECT id, name, email, created_at, updated_at
		FROM users;
	`
	QueryUpdateUser = `
		UPDATE users
		SET name = $2, email = $3, updated_at = $4
		WHERE id = $1;
	`
	QueryDeleteUser = `DELETE FROM users WHERE id = $1;`
)

package store

const (
	createUser = `INSERT INTO users (login, password_hash, email)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, email, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, email, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, email, created_at
    FROM users
    WHERE user_id = $1;`
)

package store

// Server-side account queries. Storage manifest and record queries are
// built dynamically with squirrel in server_storage.go because their
// shapes vary with the request.
const (
	createAccount = `INSERT INTO accounts (login, auth_hash, service_id)
    VALUES ($1, $2, $3)
    RETURNING account_id, login, auth_hash, service_id, created_at;`

	findAccountByLogin = `SELECT account_id, login, auth_hash, service_id, created_at
    FROM accounts
    WHERE login = $1;`
)

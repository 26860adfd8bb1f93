package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Driver de Postgres
)

// NewDBConnection abre la conexión, configura el pool y prueba el ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// StatusCheck devuelve nil si puede hablar con la base de datos.
func StatusCheck(ctx context.Context, db *sql.DB) error {
	var pingError error
	for attempts := 1; ; attempts++ {
		pingError = db.PingContext(ctx)
		if pingError == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	const q = `SELECT true`
	var tmp bool
	return db.QueryRowContext(ctx, q).Scan(&tmp)
}

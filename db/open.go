// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteBusyTimeoutMs is how long a sqlite writer waits for the lock
const SQLiteBusyTimeoutMs = 5000

// Open opens a connection pool for the dialect. SQLite gets a busy
// timeout, WAL journaling and a single connection so that overlapping
// writes queue instead of failing with SQLITE_BUSY.
func Open(dialect, url string) (*sql.DB, error) {
	driver, err := DriverName(dialect)
	if err != nil {
		return nil, err
	}

	dsn := url
	if dialect == DialectSQLite {
		dsn = SQLiteDSN(url)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

// SQLiteDSN appends the busy_timeout and journal_mode pragmas to url
func SQLiteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", url, sep, SQLiteBusyTimeoutMs)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for a dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - participant: id (assigned by the database), name

Names are not unique. Match results are never stored.

# Dialects

  - postgres: driver "postgres" (github.com/lib/pq)
  - sqlite: driver "sqlite" (modernc.org/sqlite)

DriverName maps a dialect to the driver name for sql.Open.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the review database and manages its schema.

# Opening

Open selects a gorm dialector from the configured database type:

  - sqlite: pure-Go SQLite file (default, reviews.db)
  - postgres: lib/pq connection string
  - mysql: go-sql-driver DSN, parseTime forced on

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(conn)

SQLite connections are capped at one so concurrent writers queue instead
of failing with SQLITE_BUSY.

# Schema Creation

CreateSchema migrates the reviews table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times.

# Tables

  - reviews: one row per analyzed review, indexed on ref and sentiment

Rows are inserted by POST /analyze and never updated or deleted.
*/
package db

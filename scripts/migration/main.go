package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"negotiation-api/config"
	"negotiation-api/db"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	conn, err := sql.Open("mysql", cfg.Storage.MySQL.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Migration completed.")
}

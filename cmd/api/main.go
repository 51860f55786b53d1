package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/godcandidate/warehouse-management-app/internal/app"
)

func main() {
	_ = godotenv.Load()

	a := app.New()
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}

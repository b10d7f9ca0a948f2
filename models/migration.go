package models

import (
	"log"

	"github.com/childfind-ng/childfind_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&MissingChild{}, &CaseHistory{},
		&FoundChild{},
		&Sighting{},
		&WitnessReport{},
		&Suspect{}, &SuspectCase{},
		&Alert{},
	)
	if err != nil {
		log.Fatal(err)
	}
}

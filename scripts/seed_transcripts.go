package main

import (
	"fmt"
	"log"

	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
	"github.com/zenpixdev/meet-task-tracker/internal/infrastructure/database"
	"github.com/zenpixdev/meet-task-tracker/pkg/config"
)

func main() {
	log.Println("🚀 Starting sample transcript seeding...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ana := "Ana"
	bob := "Bob"
	launchDue := "2026-09-12"
	notesDue := "2026-09-05"

	samples := []*entities.Transcript{
		entities.NewTranscript(
			"Ana: I'll finish the launch checklist by September 12.\n"+
				"Bob: I can draft the release notes before the 5th.\n"+
				"Ana: great, let's sync again on Monday.",
			[]entities.ActionItem{
				entities.NewActionItem("Finish the launch checklist", &ana, &launchDue, false),
				entities.NewActionItem("Draft the release notes", &bob, &notesDue, false),
			},
		),
		entities.NewTranscript(
			"Standup: nothing blocking, no decisions today.",
			nil,
		),
	}

	log.Println("📝 Creating sample transcripts...")
	for i, tr := range samples {
		if err := db.Create(tr).Error; err != nil {
			log.Printf("❌ Failed to create transcript %d: %v", i+1, err)
			continue
		}
		fmt.Printf("🟢 Transcript %d: %s (%d items)\n", i+1, tr.ID, len(tr.ActionItems))
	}

	log.Println("✅ Seeding complete")
}

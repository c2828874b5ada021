package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/estatedesk/crm-reports-api/internal/platform/config"
	platformfs "github.com/estatedesk/crm-reports-api/internal/platform/firestore"
	"github.com/estatedesk/crm-reports-api/internal/repository"
	"github.com/joho/godotenv"
)

// Quick connectivity check. Counts the reporting collections and dumps
// the stored dashboard snapshot so a bad credential or project ID shows
// up before deploying the server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client, credsSource, err := platformfs.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()
	fmt.Printf("project %s (%s credentials)\n", cfg.FirebaseProjectID, credsSource)

	properties := repository.NewPropertyRepository(client)
	leads := repository.NewLeadRepository(client)
	users := repository.NewUserRepository(client)

	published, err := properties.ListPublished(ctx)
	if err != nil {
		log.Fatalf("Failed to list properties: %v", err)
	}
	fmt.Printf("properties (published): %d\n", len(published))

	leadCount, err := leads.CountPublished(ctx)
	if err != nil {
		log.Fatalf("Failed to count leads: %v", err)
	}
	fmt.Printf("leads (published): %d\n", leadCount)

	userCount, err := users.CountPublished(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	fmt.Printf("users (published): %d\n", userCount)

	snapshot, err := repository.NewSnapshotRepository(client).Get(ctx)
	if err != nil {
		fmt.Printf("dashboard snapshot: not found (%v)\n", err)
		return
	}

	jsonData, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal snapshot: %v", err)
	}
	fmt.Println("dashboard snapshot:")
	fmt.Println(string(jsonData))
}

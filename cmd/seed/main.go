// Command seed populates the blog database with sample data.
package main

import (
	"flag"
	"log"

	"weblog/internal/config"
	"weblog/internal/database"
	"weblog/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 10, "Number of randomized posts to create")
	numComments := flag.Int("comments", 20, "Number of randomized comments to create")
	clean := flag.Bool("clean", false, "Clean blog tables before seeding")
	flag.Parse()

	log.Printf("seeding %d users, %d posts, %d comments (clean=%v)", *numUsers, *numPosts, *numComments, *clean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumComments: *numComments,
		Clean:       *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("seeding complete; sample users share the password: password123")
}

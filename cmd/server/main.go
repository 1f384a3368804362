package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"compound-words/internal/api"
	"compound-words/internal/store"
	"compound-words/internal/wordlist"

	"github.com/go-chi/chi/v5"
)

func main() {
	wordsFile := flag.String("words", "", "Word list served by GET /compounds (optional)")
	addr := flag.String("addr", ":8080", "Address to listen on")
	workers := flag.Int("workers", 0, "Number of parallel workers per search (default: number of CPUs)")
	flag.Parse()

	// Load the preloaded vocabulary
	var words []string
	if *wordsFile != "" {
		var err error
		words, err = wordlist.LoadFile(*wordsFile)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Printf("Loaded %d words", len(words))
	}

	// Initialize database
	dbPath := getDBPath()
	log.Printf("Connecting to database: %s", dbPath)
	db, err := store.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	server := api.NewServer(words, db, *workers)

	mux := chi.NewMux()
	h := api.HandlerFromMux(server, mux)

	s := &http.Server{
		Addr:    *addr,
		Handler: h,
	}

	fmt.Printf("Starting server on %s\n", *addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./compound.db"
	}
	return dbPath
}

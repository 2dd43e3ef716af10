package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/smartstudy/flashcards-api/config"
	"github.com/smartstudy/flashcards-api/generation"
	"github.com/smartstudy/flashcards-api/handlers"
	"github.com/smartstudy/flashcards-api/middleware"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	env := config.Load()

	db, err := config.Connect(env.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	DBHandler := &handlers.DBHandler{DB: db}
	AIHandler := handlers.NewAIHandler(generation.NewClient(env.OllamaHost, env.OllamaModel))

	mux := http.NewServeMux()

	// Decks
	mux.HandleFunc("POST /decks/{$}", DBHandler.CreateDeck)
	mux.HandleFunc("GET /decks/{$}", DBHandler.GetDecks)
	mux.HandleFunc("DELETE /decks/{deckID}", DBHandler.DeleteDeck)

	// Flashcards
	mux.HandleFunc("POST /decks/{deckID}/flashcards/{$}", DBHandler.CreateFlashcard)
	mux.HandleFunc("GET /decks/{deckID}/flashcards/{$}", DBHandler.GetFlashcardsForDeck)
	mux.HandleFunc("GET /flashcards/{cardID}", DBHandler.GetFlashcardByID)
	mux.HandleFunc("PUT /flashcards/{cardID}", DBHandler.UpdateFlashcardByID)
	mux.HandleFunc("DELETE /flashcards/{cardID}", DBHandler.DeleteFlashcardByID)

	// Generation
	mux.HandleFunc("POST /generate_flashcards", AIHandler.GenerateFlashcards)
	mux.HandleFunc("POST /chatbot", AIHandler.Chatbot)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.Log(middleware.Recover(mux)))

	serverAddr := "0.0.0.0:" + env.Port
	log.Printf("listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal(err)
	}
}

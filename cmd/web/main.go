package main

import (
	"log"
	"os"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/server"
	"github.com/minaorangina/klondike/store"
)

func main() {
	// a .env file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)
	s.Handler = handlers.LoggingHandler(os.Stdout, s.Handler)

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(s.ListenAndServe())
}

package main

import (
	"log"

	_ "squadhr/docs"
	"squadhr/internal/config"
	"squadhr/internal/server"
)

// @title           SquadHR API
// @version         1.0
// @description     Recruitment pipeline, squad boards and member requests.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

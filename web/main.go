package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	rootDir := flag.String("root", ".", "Directory holding the .env file")
	port := flag.Int("port", 0, "Port to serve on (0 = RAYTRACER_PORT or 8080)")
	flag.Parse()

	cfg, err := config.Load(*rootDir)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	// Create and start web server
	webServer := server.NewServer(cfg)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/scenes to list scenes", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

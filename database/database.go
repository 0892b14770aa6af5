package database

import (
	"log"
	"time"

	"worldone/config"
	"worldone/supabase"
)

// client is the single shared Supabase handle. It stays nil when
// credentials are missing, and every data endpoint then answers with a
// fixed "not configured" error instead of the process crashing.
var client *supabase.Client

// ConnectDb initializes the Supabase client from the loaded configuration.
func ConnectDb() {
	cfg := config.AppConfig

	key := cfg.SupabaseKey()
	if cfg.SupabaseURL == "" || key == "" {
		log.Println("Warning: Supabase credentials not set or invalid. Database operations will fail.")
		return
	}
	if key == cfg.SupabaseServiceKey {
		log.Println("Using Supabase service role key")
	} else {
		log.Println("Using Supabase anon key")
	}

	client = supabase.NewClientWithUploadTimeout(
		cfg.SupabaseURL,
		key,
		time.Duration(cfg.UploadTimeoutMinutes)*time.Minute,
	)
	log.Printf("Supabase client initialized with URL: %s", cfg.SupabaseURL)
}

// Client returns the shared handle, or nil when not configured.
func Client() *supabase.Client {
	return client
}

// Set replaces the shared handle. Tests use this to point handlers at a
// fake PostgREST backend.
func Set(c *supabase.Client) {
	client = c
}

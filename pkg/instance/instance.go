package instance

import "os"

// GetID returns the process instance identifier or a default value. Platforms
// like Heroku expose one as DYNO; INSTANCE_ID works everywhere else.
func GetID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	return "local"
}

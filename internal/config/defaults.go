package config

// DefaultVersions are the releases a freshly initialised site documents.
var DefaultVersions = []string{
	"v21.0.0",
	"v20.0.0",
	"v19.0.0",
	"v18.0.0",
	"v17.0.0",
	"v16.0.0",
	"v15.0.0",
}

// DefaultExcludes are glob patterns never rendered as pages.
var DefaultExcludes = []string{
	"**/_*.md",
	"**/drafts/**",
	"**/node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Product:       "Expo",
		Versions:      append([]string(nil), DefaultVersions...),
		LatestVersion: "v21.0.0",
		DataDir:       "data",
		ContentDir:    "content",
		OutputDir:     "public",
		Include:       []string{"**/*.md"},
		Exclude:       append([]string(nil), DefaultExcludes...),
		Server: ServerConfig{
			Port:      8080,
			SessionDB: ".docshell/sessions.db",
		},
	}
}

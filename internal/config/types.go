package config

// EnvDevelopment is the DOCSHELL_ENV value that turns on development mode.
const EnvDevelopment = "development"

// Config is the top-level docshell configuration, corresponding to .docshell.yml.
type Config struct {
	Product       string            `yaml:"product" koanf:"product"`
	Versions      []string          `yaml:"versions" koanf:"versions"`
	LatestVersion string            `yaml:"latest_version" koanf:"latest_version"`
	DevMode       bool              `yaml:"dev_mode" koanf:"dev_mode"`
	Env           string            `yaml:"env,omitempty" koanf:"env"`
	DataDir       string            `yaml:"data_dir" koanf:"data_dir"`
	DataFiles     map[string]string `yaml:"data_files,omitempty" koanf:"data_files"`
	ContentDir    string            `yaml:"content_dir" koanf:"content_dir"`
	OutputDir     string            `yaml:"output_dir" koanf:"output_dir"`
	Include       []string          `yaml:"include" koanf:"include"`
	Exclude       []string          `yaml:"exclude" koanf:"exclude"`
	Logo          string            `yaml:"logo,omitempty" koanf:"logo"`
	Server        ServerConfig      `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for `docshell serve`.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionDB       string `yaml:"session_db" koanf:"session_db"`
}

// Development reports whether the unversioned docs and live reload are on.
func (c *Config) Development() bool {
	return c.DevMode || c.Env == EnvDevelopment
}

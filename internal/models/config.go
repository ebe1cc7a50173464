package models

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	ContactPath string `yaml:"contact_path"`
}

// DatabaseConfig selects the backing store. When URL (or the DATABASE_URL
// environment variable) is set the server uses Postgres, otherwise it falls
// back to the embedded SQLite file at SQLitePath.
type DatabaseConfig struct {
	URL        string `yaml:"url"`
	SQLitePath string `yaml:"sqlite_path"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

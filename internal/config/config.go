package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Application ApplicationConfig `mapstructure:"application"`
	Deck        DeckConfig        `mapstructure:"deck"`
	Drive       DriveConfig       `mapstructure:"drive"`
	Database    DatabaseConfig    `mapstructure:"database"`
}

type ApplicationConfig struct {
	Name    string        `mapstructure:"name"`
	Version string        `mapstructure:"version"`
	Author  string        `mapstructure:"author"`
	Storage StorageConfig `mapstructure:"storage"`
}

type StorageConfig struct {
	// Output is where generated decks land; Stage is the directory the
	// watcher observes for verse sources.
	Output string `mapstructure:"output"`
	Stage  string `mapstructure:"stage"`
}

type DeckConfig struct {
	MaxChars       int    `mapstructure:"max_chars"`
	HighlightColor string `mapstructure:"highlight_color"`
	BodyColor      string `mapstructure:"body_color"`
	ReferenceColor string `mapstructure:"reference_color"`
	SectionColor   string `mapstructure:"section_color"`
}

type DriveConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	FolderID        string `mapstructure:"folder_id"`
	FolderName      string `mapstructure:"folder_name"`
	Share           bool   `mapstructure:"share"`
}

func (c *DriveConfig) IsConfigured() bool {
	return c.CredentialsFile != ""
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Options  string `mapstructure:"options"`
}

func (c *DatabaseConfig) IsConfigured() bool {
	return c.URL != "" || c.Host != ""
}

func (c *DatabaseConfig) GetConnectStr() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslmode)

	if c.Options != "" {
		// Basic URL encoding for the options value: space -> %20
		encodedOptions := strings.ReplaceAll(c.Options, " ", "%20")
		connStr += fmt.Sprintf("&options=%s", encodedOptions)
	}

	return connStr
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	// Environment variable mappings
	mappings := []struct {
		key, env string
	}{
		{"database.url", "DB_URL"},
		{"database.host", "PG_HOST"},
		{"database.port", "PG_PORT"},
		{"database.user", "PG_USER"},
		{"database.password", "PG_PASSWORD"},
		{"database.dbname", "PG_DB"},
		{"database.sslmode", "PG_SSLMODE"},
		{"database.options", "PG_OPTIONS"},

		// Storage
		{"application.storage.output", "STORAGE_OUTPUT"},
		{"application.storage.stage", "STORAGE_STAGE"},

		// Deck styling
		{"deck.max_chars", "DECK_MAX_CHARS"},
		{"deck.highlight_color", "DECK_HIGHLIGHT_COLOR"},
		{"deck.body_color", "DECK_BODY_COLOR"},
		{"deck.reference_color", "DECK_REFERENCE_COLOR"},
		{"deck.section_color", "DECK_SECTION_COLOR"},

		// Google Drive
		{"drive.credentials_file", "GDRIVE_CREDENTIALS"},
		{"drive.folder_id", "GDRIVE_FOLDER_ID"},
		{"drive.folder_name", "GDRIVE_FOLDER_NAME"},
		{"drive.share", "GDRIVE_SHARE"},
	}

	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}

	// Defaults
	viper.SetDefault("application.name", "praisonppt")
	viper.SetDefault("application.version", "0.1.0")
	viper.SetDefault("application.author", "PraisonAIPPT")
	viper.SetDefault("application.storage.output", ".")
	viper.SetDefault("application.storage.stage", "stage")
	viper.SetDefault("deck.max_chars", 200)
	viper.SetDefault("drive.share", false)

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/pages/pkg/entry"
)

const (
	promptsFile   = "stoics.csv"
	deckFile      = "tarot.csv"
	questionsFile = "questions.txt"
)

// Config is where the journal lives and how a run behaves.
type Config struct {
	Path         string
	ReferenceDir string
	Goal         int
	CatchupRate  int
	DayParts     entry.DayParts
	Editor       []string
	// File is the config file that was read, empty when none was found.
	File string
}

// LoadConfig reads .pages.yaml from $PAGES_CONFIG_PATH, ~/.pages or the
// working directory, with PAGES_* environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".pages") // .yaml is implicit
	v.SetEnvPrefix("PAGES")
	v.AutomaticEnv()

	if override := os.Getenv("PAGES_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("$HOME/.pages")
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	path, editor := platformDefaults()
	v.SetDefault("path", path)
	v.SetDefault("reference_dir", "~/.pages/personal")
	v.SetDefault("goal", 750)
	v.SetDefault("catchup_rate", 2)
	parts := entry.DefaultDayParts()
	v.SetDefault("morning_start_hour", parts.MorningStart)
	v.SetDefault("afternoon_start_hour", parts.AfternoonStart)
	v.SetDefault("evening_start_hour", parts.EveningStart)
	v.SetDefault("editor", editor)
}

func platformDefaults() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "~/Library/Mobile Documents/27N4MQEA55~pro~writer/Documents/Morning Pages",
			[]string{"open", "-a", "iA Writer"}
	case "windows":
		return "~/iCloudDrive/27N4MQEA55~pro~writer/Morning Pages",
			[]string{`C:\Program Files\iA Writer\iAWriter.exe`}
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return "~/Documents/Morning Pages", []string{editor}
}

func fromViper(v *viper.Viper) (*Config, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	ref, err := homedir.Expand(v.GetString("reference_dir"))
	if err != nil {
		return nil, fmt.Errorf("store: expand reference_dir: %w", err)
	}
	cfg := &Config{
		Path:         path,
		ReferenceDir: ref,
		Goal:         v.GetInt("goal"),
		CatchupRate:  v.GetInt("catchup_rate"),
		DayParts: entry.DayParts{
			MorningStart:   v.GetInt("morning_start_hour"),
			AfternoonStart: v.GetInt("afternoon_start_hour"),
			EveningStart:   v.GetInt("evening_start_hour"),
		},
		Editor: v.GetStringSlice("editor"),
		File:   v.ConfigFileUsed(),
	}
	if len(cfg.Editor) == 0 {
		return nil, fmt.Errorf("store: no editor configured")
	}
	return cfg, nil
}

// UseHome points the journal at the home directory, for test runs.
func (c *Config) UseHome() error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("store: home dir: %w", err)
	}
	c.Path = home
	return nil
}

// BasePath is the directory holding the entries.
func (c *Config) BasePath() string {
	return c.Path
}

// EntryPath is the file for the entry titled title.
func (c *Config) EntryPath(title string) string {
	return filepath.Join(c.Path, title+".txt")
}

func (c *Config) PromptsPath() string {
	return filepath.Join(c.ReferenceDir, promptsFile)
}

func (c *Config) DeckPath() string {
	return filepath.Join(c.ReferenceDir, deckFile)
}

func (c *Config) QuestionsPath() string {
	return filepath.Join(c.ReferenceDir, questionsFile)
}

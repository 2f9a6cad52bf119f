package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	TabWidth       int    `mapstructure:"tab_width"`
	CommentPrefix  string `mapstructure:"comment_prefix"`
	FenceLang      string `mapstructure:"fence_lang"`
	CloseFences    bool   `mapstructure:"close_fences"`
	Quiet          bool   `mapstructure:"quiet"`
	ColorChanged   string `mapstructure:"color_changed"`
	ColorUnchanged string `mapstructure:"color_unchanged"`
	ColorWarning   string `mapstructure:"color_warning"`
}

// C is the global config instance
var C Config

// File, when set, is read instead of searching the default locations
var File string

// Init initializes configuration with viper
func Init() error {
	SetDefaults()

	if File != "" {
		viper.SetConfigFile(expandTilde(File))
	} else {
		viper.SetConfigName("schemetools")
		viper.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "schemetools"))
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	// A .env next to the sources may carry SCHEMETOOLS_* overrides
	_ = godotenv.Load()

	viper.SetEnvPrefix("SCHEMETOOLS")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// SetDefaults registers the default value of every key
func SetDefaults() {
	viper.SetDefault("tab_width", 4)
	viper.SetDefault("comment_prefix", "//")
	viper.SetDefault("fence_lang", "c")
	viper.SetDefault("close_fences", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("color_changed", "32")   // Green
	viper.SetDefault("color_unchanged", "90") // Gray
	viper.SetDefault("color_warning", "33")   // Yellow
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetTabWidth returns the number of spaces folded into one tab
func GetTabWidth() int {
	if w := viper.GetInt("tab_width"); w > 0 {
		return w
	}
	return 4
}

// GetCommentPrefix returns the line prefix that marks Markdown prose
func GetCommentPrefix() string {
	return viper.GetString("comment_prefix")
}

// GetFenceLang returns the info string of opening code fences
func GetFenceLang() string {
	return viper.GetString("fence_lang")
}

// GetCloseFences returns whether dangling code regions get fenced
func GetCloseFences() bool {
	return viper.GetBool("close_fences")
}

// GetQuiet returns whether status output is suppressed
func GetQuiet() bool {
	return viper.GetBool("quiet")
}

// GetColorChanged returns ANSI color code for rewritten files
func GetColorChanged() string {
	return viper.GetString("color_changed")
}

// GetColorUnchanged returns ANSI color code for untouched files
func GetColorUnchanged() string {
	return viper.GetString("color_unchanged")
}

// GetColorWarning returns ANSI color code for warnings
func GetColorWarning() string {
	return viper.GetString("color_warning")
}

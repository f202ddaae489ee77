// Package config loads simulation settings from defaults, an optional YAML
// file and ECONSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/defense-econ/internal/models"
)

// EnvPrefix is the prefix for environment overrides, e.g. ECONSIM_TREASURY
const EnvPrefix = "ECONSIM"

// Settings configures a new game
type Settings struct {
	DataDir           string  `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	NationName        string  `mapstructure:"nation_name" yaml:"nation_name" validate:"required"`
	Treasury          float64 `mapstructure:"treasury" yaml:"treasury"`
	TaxRate           float64 `mapstructure:"tax_rate" yaml:"tax_rate"`
	CivilianGDP       float64 `mapstructure:"civilian_gdp" yaml:"civilian_gdp" validate:"gt=0"`
	PublicOpinion     float64 `mapstructure:"public_opinion" yaml:"public_opinion" validate:"gte=0,lte=100"`
	ResearchPoints    float64 `mapstructure:"research_points" yaml:"research_points" validate:"gte=0"`
	ConstructionSlots int     `mapstructure:"construction_slots" yaml:"construction_slots" validate:"gte=0"`
	LogLevel          string  `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the settings of a fresh game
func Default() Settings {
	return Settings{
		DataDir:           "data",
		NationName:        "Player",
		Treasury:          models.DefaultTreasury,
		TaxRate:           models.DefaultTaxRate,
		CivilianGDP:       models.DefaultCivilianGDP,
		PublicOpinion:     models.DefaultPublicOpinion,
		ResearchPoints:    models.DefaultResearchPoints,
		ConstructionSlots: models.DefaultConstructionSlots,
		LogLevel:          "info",
	}
}

// Load reads settings. An empty path uses defaults and the environment only.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks field constraints
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// YAML renders the settings in config file form
func (s Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// NewNation builds the player nation described by the settings
func (s Settings) NewNation() *models.Nation {
	n := models.NewNation(s.NationName)
	n.Treasury = s.Treasury
	n.TaxRate = s.TaxRate
	n.CivilianGDP = s.CivilianGDP
	n.PublicOpinion = s.PublicOpinion
	n.ResearchPoints = s.ResearchPoints
	n.ConstructionSlots = s.ConstructionSlots
	n.RecomputeTargetOpinion()
	return n
}

func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("nation_name", d.NationName)
	v.SetDefault("treasury", d.Treasury)
	v.SetDefault("tax_rate", d.TaxRate)
	v.SetDefault("civilian_gdp", d.CivilianGDP)
	v.SetDefault("public_opinion", d.PublicOpinion)
	v.SetDefault("research_points", d.ResearchPoints)
	v.SetDefault("construction_slots", d.ConstructionSlots)
	v.SetDefault("log_level", d.LogLevel)
}

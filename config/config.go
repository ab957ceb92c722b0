// Package config resolves valveflow run settings from defaults, an optional
// YAML file, VALVEFLOW_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/valveflow/search"
)

// Defaults.
const (
	DefaultMinutes         = 30
	DefaultTeachingMinutes = 4
	EnvPrefix              = "VALVEFLOW"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is a resolved run configuration.
type Config struct {
	Start           string        `mapstructure:"start"` // empty: the scenario decides
	Minutes         int           `mapstructure:"minutes" validate:"min=1"`
	Agents          int           `mapstructure:"agents" validate:"oneof=1 2"`
	Bound           string        `mapstructure:"bound" validate:"oneof=none loose tight"`
	StepLimit       int64         `mapstructure:"step_limit" validate:"min=0"`
	TimeLimit       time.Duration `mapstructure:"time_limit" validate:"min=0"`
	TeachingMinutes int           `mapstructure:"teaching_minutes" validate:"min=0"`
	Log             Log           `mapstructure:"log"`
}

// Log selects the logger built by the command.
type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// key → flag name. minutes has no viper default so that IsSet tells an
// explicit budget from the derived one.
var flagNames = map[string]string{
	"start":            "start",
	"minutes":          "minutes",
	"agents":           "agents",
	"bound":            "bound",
	"step_limit":       "step-limit",
	"time_limit":       "time-limit",
	"teaching_minutes": "teaching-minutes",
	"log.level":        "log-level",
	"log.format":       "log-format",
}

// RegisterFlags defines the configuration flags on fs. Unset flags never
// override the file or the environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("start", "", "start valve (overrides the scenario)")
	fs.Int("minutes", DefaultMinutes, "time budget in minutes (default 30, or 30 minus teaching-minutes with two agents)")
	fs.Int("agents", 1, "number of agents (1 or 2)")
	fs.String("bound", search.LooseBound.String(), "upper bound policy: none, loose or tight")
	fs.Int64("step-limit", 0, "abort after this many expansions (0 = unlimited)")
	fs.Duration("time-limit", 0, "abort after this wall time (0 = none)")
	fs.Int("teaching-minutes", DefaultTeachingMinutes, "minutes spent teaching the second agent")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "console", "log format: console or json")
}

// Load resolves the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("start", "")
	v.SetDefault("agents", 1)
	v.SetDefault("bound", search.LooseBound.String())
	v.SetDefault("step_limit", 0)
	v.SetDefault("time_limit", time.Duration(0))
	v.SetDefault("teaching_minutes", DefaultTeachingMinutes)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key := range flagNames {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagNames {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if !v.IsSet("minutes") {
		c.Minutes = DefaultMinutes
		if c.Agents == 2 {
			c.Minutes -= c.TeachingMinutes
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks field constraints and reports them in plain English.
func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// SearchOptions maps the run settings onto search options.
func (c Config) SearchOptions() (search.Options, error) {
	bound, err := search.ParseBound(c.Bound)
	if err != nil {
		return search.Options{}, err
	}
	opts := search.DefaultOptions()
	opts.Bound = bound
	opts.StepLimit = c.StepLimit
	opts.TimeLimit = c.TimeLimit

	return opts, nil
}

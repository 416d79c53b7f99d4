// Package config holds the tunable settings of a seqalign run.
//
// Settings are layered: Default(), then an optional YAML file (Load), then
// any flags the user set explicitly (applied by the cli package). The result
// is checked with Validate before use.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the merged run configuration.
type Config struct {
	// Output
	Output       string `yaml:"output" validate:"oneof=text tsv json jsonl"`
	Width        int    `yaml:"width" validate:"gte=1,lte=100000"`
	CounterWidth int    `yaml:"counter_width" validate:"gte=1,lte=32"`
	Color        string `yaml:"color" validate:"oneof=auto always never"`
	Sort         bool   `yaml:"sort"`
	Header       bool   `yaml:"header"`

	// Admission
	MaxCells    int64  `yaml:"max_cells" validate:"gte=0"`
	MaxDistance int    `yaml:"max_distance" validate:"gte=-1"`
	OnOversize  string `yaml:"on_oversize" validate:"oneof=skip fail"`

	// Input handling
	Normalize bool   `yaml:"normalize"`
	Alphabet  string `yaml:"alphabet" validate:"oneof=any dna iupac protein"`

	// Performance
	Threads int `yaml:"threads" validate:"gte=0"`

	// Exit code when nothing was emitted.
	NoMatchExitCode int `yaml:"no_match_exit_code" validate:"gte=0,lte=255"`
}

// DefaultMaxCells bounds the matrices of one pair, and of all pairs aligned
// at once, to roughly 250 MB (five bytes per cell).
const DefaultMaxCells int64 = 50_000_000

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:          "text",
		Width:           60,
		CounterWidth:    10,
		Color:           "auto",
		Header:          true,
		MaxCells:        DefaultMaxCells,
		MaxDistance:     -1,
		OnOversize:      "skip",
		Alphabet:        "any",
		NoMatchExitCode: 1,
	}
}

// Load overlays the YAML file at path onto Default().
func Load(path string) (Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()
	cfg, err := Decode(fh, Default())
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto base. Unknown keys are rejected.
// An empty document leaves base unchanged.
func Decode(r io.Reader, base Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be <= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of the System options.
//
//	frame_rate = 60
//	measure_rate = 10
//	max_settle_passes = 64
//	update_queue_size = 256
//	debug_log = "/tmp/scene.log"
type Config struct {
	FrameRate       int    `toml:"frame_rate"`
	MeasureRate     int    `toml:"measure_rate"`
	MaxSettlePasses int    `toml:"max_settle_passes"`
	UpdateQueueSize int    `toml:"update_queue_size"`
	DebugLog        string `toml:"debug_log,omitempty"`
}

// DefaultConfig returns the configuration NewSystem uses without options.
func DefaultConfig() Config {
	return Config{
		FrameRate:       60,
		MeasureRate:     10,
		MaxSettlePasses: 64,
		UpdateQueueSize: 256,
	}
}

// LoadConfig reads a TOML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML over the defaults. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.FrameRate < 1 || c.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("frame_rate %d out of range 1-240", c.FrameRate))
	}
	if c.MeasureRate < 1 {
		errs = append(errs, fmt.Errorf("measure_rate must be at least 1, got %d", c.MeasureRate))
	}
	if c.MaxSettlePasses < 1 {
		errs = append(errs, fmt.Errorf("max_settle_passes must be at least 1, got %d", c.MaxSettlePasses))
	}
	if c.UpdateQueueSize < 1 {
		errs = append(errs, fmt.Errorf("update_queue_size must be at least 1, got %d", c.UpdateQueueSize))
	}
	return errors.Join(errs...)
}

// Options converts the config into System options.
func (c Config) Options() []SystemOption {
	return []SystemOption{
		WithFrameRate(c.FrameRate),
		WithMeasureRate(c.MeasureRate),
		WithMaxSettlePasses(c.MaxSettlePasses),
		WithUpdateQueueSize(c.UpdateQueueSize),
	}
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Apply updates the settings that can change while running. The update
// queue size is fixed at construction. Call it from the tick goroutine,
// for example through QueueUpdate.
func (s *System) Apply(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.SetFrameRate(c.FrameRate)
	s.measureRate = c.MeasureRate
	s.maxSettlePasses = c.MaxSettlePasses
	return nil
}

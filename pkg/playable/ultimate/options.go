package ultimate

import (
	"fmt"

	"ultimate-holdem-server/pkg/handanalyzer"
)

// Options are the table limits for a game of Ultimate Texas Hold'em
type Options struct {
	StartingBankroll int `yaml:"startingBankroll" json:"startingBankroll"`
	MinAnte          int `yaml:"minAnte" json:"minAnte"`
	MaxAnte          int `yaml:"maxAnte" json:"maxAnte"`
	MinTrips         int `yaml:"minTrips" json:"minTrips"`
	MaxTrips         int `yaml:"maxTrips" json:"maxTrips"`

	// DealerQualifier is the lowest category the dealer needs for the ante to pay
	// A non-qualifying dealer pushes the ante instead of paying it
	DealerQualifier handanalyzer.Category `yaml:"-" json:"-"`
}

// DefaultOptions returns the default table limits
func DefaultOptions() Options {
	return Options{
		StartingBankroll: 1000,
		MinAnte:          10,
		MaxAnte:          100,
		MinTrips:         5,
		MaxTrips:         100,
		DealerQualifier:  handanalyzer.OnePair,
	}
}

// Validate returns an error if the options cannot be used to create a game
func (o Options) Validate() error {
	for name, value := range map[string]int{
		"startingBankroll": o.StartingBankroll,
		"minAnte":          o.MinAnte,
		"maxAnte":          o.MaxAnte,
		"minTrips":         o.MinTrips,
		"maxTrips":         o.MaxTrips,
	} {
		if value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidOptions, name, value)
		}
	}

	if o.MinAnte > o.MaxAnte {
		return fmt.Errorf("%w: minAnte (%d) is greater than maxAnte (%d)", ErrInvalidOptions, o.MinAnte, o.MaxAnte)
	}

	if o.MinTrips > o.MaxTrips {
		return fmt.Errorf("%w: minTrips (%d) is greater than maxTrips (%d)", ErrInvalidOptions, o.MinTrips, o.MaxTrips)
	}

	if !o.DealerQualifier.IsValid() {
		return fmt.Errorf("%w: invalid dealer qualifier: %d", ErrInvalidOptions, o.DealerQualifier)
	}

	return nil
}

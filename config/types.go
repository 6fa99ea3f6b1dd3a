package config

// PricingConfig contains the constants used to re-price a line when a station
// is inserted.
type PricingConfig struct {
	AdjacentFare int `yaml:"adjacent_fare" validate:"gte=0"`
	FarFare      int `yaml:"far_fare" validate:"gte=0"`
}

// Config is the root configuration structure
type Config struct {
	DataFile    string        `yaml:"data_file" validate:"required"`
	Interchange string        `yaml:"interchange" validate:"required,excludesall=0x2C\n\r"`
	Pricing     PricingConfig `yaml:"pricing"`
}

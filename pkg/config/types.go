package config

// Study represents a complete optimization study definition
type Study struct {
	Name      string    `yaml:"name"`
	LogLevel  string    `yaml:"log_level,omitempty"`
	Seed      int64     `yaml:"seed,omitempty"`
	Threshold float64   `yaml:"threshold,omitempty"`  // 0 means the engine default
	MaxSweeps int       `yaml:"max_sweeps,omitempty"` // 0 means unbounded
	Solver    string    `yaml:"solver,omitempty"`     // defaults to bounded
	Objective Objective `yaml:"objective"`
	Params    []Param   `yaml:"params"`
}

// Objective selects and configures the objective function
type Objective struct {
	Type    string    `yaml:"type"`
	Targets []float64 `yaml:"targets,omitempty"` // quadratic: per-dimension optima
	Offset  float64   `yaml:"offset,omitempty"`  // quadratic: score at the optimum
	Scale   float64   `yaml:"scale,omitempty"`   // noise: multiplier ceiling
	Series  *Series   `yaml:"series,omitempty"`  // backtest: synthetic market
}

// Series describes the synthetic price series a backtest objective runs over
type Series struct {
	Candles    int     `yaml:"candles"`
	StartPrice float64 `yaml:"start_price"`
	Drift      float64 `yaml:"drift,omitempty"`
	Volatility float64 `yaml:"volatility"`
}

// Param represents one tunable dimension
type Param struct {
	Name    string  `yaml:"name"`
	Value   float64 `yaml:"value"`
	Ratio   bool    `yaml:"ratio,omitempty"`
	Integer bool    `yaml:"integer,omitempty"`
	Bounds  Bounds  `yaml:"bounds"`
}

// Bounds is the closed search interval for one dimension
type Bounds struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

package doctor

// Report contains all diagnostic results
type Report struct {
	Binary       BinaryHealth
	DaemonConfig DaemonConfigHealth
	PID          PIDHealth
	Summary      Summary
}

// BinaryHealth contains daemon binary availability status
type BinaryHealth struct {
	Path     string
	Resolved string // absolute path after PATH lookup
	Found    bool
	Error    string
}

// DaemonConfigHealth contains the state of the daemon's config file
type DaemonConfigHealth struct {
	Path            string
	Exists          bool
	Readable        bool
	HasPIDFileEntry bool
	Error           string
}

// PIDHealth contains PID file resolution and daemon liveness
type PIDHealth struct {
	PIDFile string
	PID     int
	Valid   bool // PID file held pure digit content
	Running bool
}

// Summary contains overall health metrics
type Summary struct {
	WarningsCount int
	ErrorsCount   int
	HealthStatus  string // GOOD, FAIR, POOR
}

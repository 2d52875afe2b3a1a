package version

// Set at link time.
var (
	Version   string
	Commit    string
	BuildDate string
	License   = "Apache License 2.0"
)

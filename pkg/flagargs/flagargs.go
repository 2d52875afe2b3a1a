package flagargs

import (
	"errors"
	"strings"
)

// OutputFormat is the pflag value behind the --output flag. The empty
// format means human output; "json" may carry comma-separated opts, e.g.
// --output json=ugly.
type OutputFormat struct {
	Format string
	Opts   []string
}

func (o *OutputFormat) String() string {
	s := o.Format
	if 0 < len(o.Opts) {
		s += "=" + strings.Join(o.Opts, ",")
	}
	return s
}

func (o *OutputFormat) Set(v string) error {
	switch {
	case strings.HasPrefix(v, "json"):
		o.Format = "json"
		parts := strings.Split(v, "=")
		if len(parts) < 2 {
			return nil
		}
		o.Opts = strings.Split(parts[1], ",")
		return nil
	}
	return errors.New(`must be "json[=opts...]"`)
}

func (o *OutputFormat) Type() string {
	return "string"
}

// HasOpt reports whether opt was passed with the format.
func (o *OutputFormat) HasOpt(opt string) bool {
	for _, v := range o.Opts {
		if v == opt {
			return true
		}
	}
	return false
}

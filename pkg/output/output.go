// Package output renders a probe report for humans or machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/igd-tools/igdprobe/pkg/flagargs"
	"github.com/igd-tools/igdprobe/pkg/upnp"
)

// WriteReport writes report to w in the requested format. The empty
// format is the human one; "json" emits a single document, indented
// unless the "ugly" opt was given.
func WriteReport(w io.Writer, report *upnp.Report, format *flagargs.OutputFormat) error {
	if format.Format == "json" {
		enc := json.NewEncoder(w)
		if !format.HasOpt("ugly") {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(report)
	}
	return writeHuman(w, report)
}

func writeHuman(w io.Writer, report *upnp.Report) error {
	te := termenv.NewOutput(w, termenv.WithProfile(profile(w)))

	fmt.Fprintf(w, "gateway:  %s\n", report.Gateway)
	fmt.Fprintf(w, "location: %s\n", report.Location)

	for _, svc := range report.Services {
		fmt.Fprintf(w, "\n%s\n", te.String(svc.Service.ServiceType).Bold())
		fmt.Fprintf(w, "  control url: %s\n", svc.Service.ControlURL)
		fmt.Fprintf(w, "  scpd url:    %s\n", svc.Service.SCPDURL)

		if svc.Err != nil {
			fmt.Fprintf(w, "  %s %s\n", te.String("error:").Foreground(te.Color("1")), svc.Error)
			continue
		}

		for _, ar := range svc.Actions {
			fmt.Fprintf(w, "  %s\n", ar.Action.Name)
			for _, arg := range ar.Action.Arguments {
				fmt.Fprintf(w, "    - %s (%s)\n", arg.Name, arg.Direction)
			}
			switch {
			case ar.Err != nil:
				fmt.Fprintf(w, "    %s %s\n", te.String("error:").Foreground(te.Color("1")), ar.Error)
			case ar.Invoked:
				fmt.Fprintf(w, "    %s\n%s\n", te.String("response:").Foreground(te.Color("2")), indent(ar.Response, "      "))
			}
		}
	}

	return nil
}

func profile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

func indent(s, prefix string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return s
	}
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

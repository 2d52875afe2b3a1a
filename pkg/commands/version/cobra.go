package version

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/igd-tools/igdprobe/pkg/flagargs"
	"github.com/igd-tools/igdprobe/pkg/version"
)

func New() *Cmd {
	return &Cmd{}
}

type Cmd struct {
	cobraCommand *cobra.Command
}

func (c *Cmd) Cobra() *cobra.Command {
	if c.cobraCommand != nil {
		return c.cobraCommand
	}
	c.cobraCommand = &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(cmd *cobra.Command, args []string) {
			var ofa flagargs.OutputFormat
			if f := cmd.Flags().Lookup("output"); f != nil {
				if v, ok := f.Value.(*flagargs.OutputFormat); ok {
					ofa = *v
				}
			}
			if ofa.Format == "json" {
				payload := map[string]string{}
				if ver := version.Version; ver != "" {
					payload["version"] = ver
				}
				if commit := version.Commit; commit != "" {
					payload["commit"] = commit
				}
				if date := version.BuildDate; date != "" {
					payload["buildDate"] = date
				}
				if license := version.License; license != "" {
					payload["license"] = license
				}

				enc := json.NewEncoder(os.Stdout)
				if !ofa.HasOpt("ugly") {
					enc.SetIndent("", "  ")
				}

				if err := enc.Encode(payload); err != nil {
					fmt.Fprintf(os.Stderr, "error encoding json: %v\n", err)
				}
			} else {
				if ver := version.Version; ver != "" {
					fmt.Printf("version: %s\n", ver)
				}
				if commit := version.Commit; commit != "" {
					fmt.Printf("commit: %s\n", commit)
				}
				if date := version.BuildDate; date != "" {
					fmt.Printf("build-date: %s\n", date)
				}
				if license := version.License; license != "" {
					fmt.Printf("license: %s\n", license)
				}
			}
		},
	}

	return c.cobraCommand
}

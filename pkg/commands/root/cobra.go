package root

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/igd-tools/igdprobe/pkg/commands/version"
	"github.com/igd-tools/igdprobe/pkg/flagargs"
	network "github.com/igd-tools/igdprobe/pkg/net"
	"github.com/igd-tools/igdprobe/pkg/output"
	"github.com/igd-tools/igdprobe/pkg/upnp"
)

type rootCommand struct {
	cobra.Command

	outFlag flagargs.OutputFormat
}

func ExecuteContext(ctx context.Context) error {
	var (
		root rootCommand
		cmd  = &root.Command
	)
	root.Use = "igdprobe"
	root.Short = "Discover the LAN gateway's UPnP services and invoke their read-only actions"
	root.Long = `igdprobe sends a unicast SSDP search to the default gateway (or an address
given with --gateway), walks the advertised device description and each
service's SCPD, and invokes every argument-less "Get" action it finds,
reporting the raw SOAP responses.`
	root.SilenceUsage = true
	root.RunE = root.runE
	root.setFlags()

	root.AddCommand(version.New().Cobra())

	return cmd.ExecuteContext(ctx)
}

func (r *rootCommand) setFlags() {
	flags := r.Flags()
	flags.String("gateway", "", "Gateway address to probe. Defaults to the host's default gateway.")
	flags.Int("port", upnp.DefaultSSDPPort, "UDP port the gateway listens on for SSDP.")
	flags.Duration("timeout", upnp.DefaultTimeout, "Timeout for each network operation.")
	flags.String("action-prefix", upnp.DefaultInvokePolicy.Prefix, "Only invoke actions whose name starts with this prefix.")
	flags.Bool("no-invoke", false, "Report discovered services and actions without invoking anything.")

	r.PersistentFlags().Var(&r.outFlag, "output", `Output format. Accepts "json[=opts...]"; the "ugly" opt disables indentation.`)
}

func (r *rootCommand) runE(cmd *cobra.Command, args []string) error {
	var (
		ctx = cmd.Context()
		log = zerolog.Ctx(ctx)

		flags           = cmd.Flags()
		gatewayAddr, _  = flags.GetString("gateway")
		port, _         = flags.GetInt("port")
		timeout, _      = flags.GetDuration("timeout")
		actionPrefix, _ = flags.GetString("action-prefix")
		noInvoke, _     = flags.GetBool("no-invoke")
	)

	if gatewayAddr == "" {
		addr, err := network.ResolveGateway()
		if err != nil {
			return fmt.Errorf("failed to resolve gateway: %w", err)
		}
		gatewayAddr = addr
	}
	if err := network.ValidateAddress(gatewayAddr); err != nil {
		return err
	}

	log.Info().
		Str("gateway", gatewayAddr).
		Int("port", port).
		Msg("probing gateway")

	prober := upnp.Prober{
		Discoverer: &upnp.Discoverer{Port: port, Timeout: timeout},
		Client:     &http.Client{Timeout: timeout},
		Policy:     upnp.InvokePolicy{Prefix: actionPrefix},
		NoInvoke:   noInvoke,
	}

	report, err := prober.Probe(ctx, gatewayAddr)
	if err != nil {
		return err
	}

	return output.WriteReport(os.Stdout, report, &r.outFlag)
}

package upnp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvokePolicy decides which discovered actions are safe to call without
// caller input. The default (name starts with "Get", no "in" arguments)
// is a naming convention, not a UPnP guarantee. It lives in one place so
// it can be tightened or loosened deliberately.
type InvokePolicy struct {
	Prefix string
}

// DefaultInvokePolicy invokes argument-less getters.
var DefaultInvokePolicy = InvokePolicy{Prefix: "Get"}

// Eligible reports whether the action may be invoked under this policy.
func (p InvokePolicy) Eligible(a *Action) bool {
	if p.Prefix == "" || !strings.HasPrefix(a.Name, p.Prefix) {
		return false
	}
	return a.InputCount() == 0
}

// ActionReport is the outcome for a single discovered action.
type ActionReport struct {
	Action   Action `json:"action"`
	Invoked  bool   `json:"invoked"`
	Response string `json:"response,omitempty"`
	Err      error  `json:"-"`
	Error    string `json:"error,omitempty"`
}

// ServiceReport is the outcome for a single discovered service. Err is
// set when the service's SCPD could not be fetched or parsed; sibling
// services are unaffected.
type ServiceReport struct {
	Service ServiceRecord  `json:"service"`
	Actions []ActionReport `json:"actions,omitempty"`
	Err     error          `json:"-"`
	Error   string         `json:"error,omitempty"`
}

// Report is the aggregate of one probe run.
type Report struct {
	RunID    string          `json:"runID"`
	Gateway  string          `json:"gateway"`
	Location string          `json:"location"`
	Services []ServiceReport `json:"services"`
}

// Prober runs the whole pipeline: discovery, device description,
// per-service SCPD introspection, and invocation of eligible actions.
type Prober struct {
	Discoverer *Discoverer
	Client     *http.Client
	Policy     InvokePolicy

	// NoInvoke reports discovered actions without calling any of them.
	NoInvoke bool
}

// NewProber returns a Prober with the default timeouts and policy.
func NewProber() *Prober {
	return &Prober{
		Discoverer: &Discoverer{},
		Client:     &http.Client{Timeout: DefaultTimeout},
		Policy:     DefaultInvokePolicy,
	}
}

// Probe runs the pipeline against the gateway at gatewayAddr. Failures
// before the device description is parsed are terminal and returned as
// the error; failures scoped to one service or one action are recorded
// in the report and do not stop the run.
func (p *Prober) Probe(ctx context.Context, gatewayAddr string) (*Report, error) {
	var (
		log    = zerolog.Ctx(ctx)
		report = Report{
			RunID:   uuid.NewString(),
			Gateway: gatewayAddr,
		}
	)

	location, err := p.Discoverer.Discover(ctx, gatewayAddr)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	report.Location = location

	locationURL, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("error parsing location url %q: %w", location, err)
	}

	doc, err := fetch(ctx, p.Client, location)
	if err != nil {
		return nil, fmt.Errorf("error getting device description: %w", err)
	}

	services, err := parseDeviceDescription(doc)
	if err != nil {
		return nil, fmt.Errorf("error parsing device description from %s: %w", location, err)
	}

	log.Info().
		Str("run-id", report.RunID).
		Str("location", location).
		Int("services", len(services)).
		Msg("parsed device description")

	for _, svc := range services {
		report.Services = append(report.Services, p.probeService(ctx, locationURL, svc))
	}

	return &report, nil
}

func (p *Prober) probeService(ctx context.Context, base *url.URL, svc ServiceRecord) ServiceReport {
	var (
		log = zerolog.Ctx(ctx)
		sr  = ServiceReport{Service: svc}
	)

	fail := func(err error) ServiceReport {
		log.Error().Err(err).
			Str("service-type", svc.ServiceType).
			Msg("skipping service")
		sr.Err = err
		sr.Error = err.Error()
		return sr
	}

	scpdURL, err := resolveRef(base, svc.SCPDURL)
	if err != nil {
		return fail(err)
	}
	controlURL, err := resolveRef(base, svc.ControlURL)
	if err != nil {
		return fail(err)
	}

	doc, err := fetch(ctx, p.Client, scpdURL)
	if err != nil {
		return fail(fmt.Errorf("error getting scpd: %w", err))
	}

	actions, err := parseSCPD(doc)
	if err != nil {
		return fail(fmt.Errorf("error parsing scpd from %s: %w", scpdURL, err))
	}

	for _, action := range actions {
		ar := ActionReport{Action: action}
		if !p.NoInvoke && p.Policy.Eligible(&action) {
			ar.Invoked = true
			ar.Response, ar.Err = invoke(ctx, p.Client, controlURL, svc.ServiceType, action.Name)
			if ar.Err != nil {
				ar.Error = ar.Err.Error()
				log.Error().Err(ar.Err).
					Str("action", action.Name).
					Str("control-url", controlURL).
					Msg("action invocation failed")
			}
		}
		sr.Actions = append(sr.Actions, ar)
	}

	return sr
}

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igd-tools/igdprobe/pkg/flagargs"
	"github.com/igd-tools/igdprobe/pkg/upnp"
)

func sampleReport() *upnp.Report {
	return &upnp.Report{
		RunID:    "a2e9f7c0-0000-0000-0000-000000000000",
		Gateway:  "192.168.1.1",
		Location: "http://192.168.1.1:5000/desc.xml",
		Services: []upnp.ServiceReport{
			{
				Service: upnp.ServiceRecord{
					ServiceType: "urn:schemas-upnp-org:service:WANIPConnection:1",
					ControlURL:  "/control",
					SCPDURL:     "/scpd.xml",
				},
				Actions: []upnp.ActionReport{
					{
						Action: upnp.Action{
							Name:      "GetExternalIPAddress",
							Arguments: []upnp.Argument{{Name: "NewExternalIPAddress", Direction: upnp.Out}},
						},
						Invoked:  true,
						Response: "<resp/>",
					},
					{
						Action: upnp.Action{Name: "SetConnectionType"},
					},
				},
			},
			{
				Service: upnp.ServiceRecord{
					ServiceType: "urn:svc:broken:1",
					ControlURL:  "/ctl",
					SCPDURL:     "/broken.xml",
				},
				Err:   errors.New("scpd fetch failed"),
				Error: "scpd fetch failed",
			},
		},
	}
}

func TestWriteReport_Human(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), &flagargs.OutputFormat{})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "gateway:  192.168.1.1")
	require.Contains(t, out, "location: http://192.168.1.1:5000/desc.xml")
	require.Contains(t, out, "urn:schemas-upnp-org:service:WANIPConnection:1")
	require.Contains(t, out, "GetExternalIPAddress")
	require.Contains(t, out, "- NewExternalIPAddress (out)")
	require.Contains(t, out, "<resp/>")
	require.Contains(t, out, "scpd fetch failed")
	// non-tty writer gets no escape sequences
	require.NotContains(t, out, "\x1b[")
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleReport(), &flagargs.OutputFormat{Format: "json"})
	require.NoError(t, err)

	var decoded upnp.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "192.168.1.1", decoded.Gateway)
	require.Len(t, decoded.Services, 2)
	require.Equal(t, "scpd fetch failed", decoded.Services[1].Error)
	require.True(t, decoded.Services[0].Actions[0].Invoked)
}

package upnp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const deviceDescription = `<?xml version="1.0"?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
  <device>
    <deviceType>urn:schemas-upnp-org:device:InternetGatewayDevice:1</deviceType>
    <serviceList>
      <service>
        <serviceType>urn:schemas-upnp-org:service:Layer3Forwarding:1</serviceType>
        <controlURL>/l3f</controlURL>
        <SCPDURL>/l3f.xml</SCPDURL>
      </service>
    </serviceList>
    <deviceList>
      <device>
        <deviceType>urn:schemas-upnp-org:device:WANDevice:1</deviceType>
        <deviceList>
          <device>
            <deviceType>urn:schemas-upnp-org:device:WANConnectionDevice:1</deviceType>
            <serviceList>
              <service>
                <serviceType>urn:schemas-upnp-org:service:WANIPConnection:1</serviceType>
                <controlURL>/control</controlURL>
                <SCPDURL>/scpd.xml</SCPDURL>
              </service>
            </serviceList>
          </device>
        </deviceList>
      </device>
    </deviceList>
  </device>
</root>`

func TestParseDeviceDescription(t *testing.T) {
	records, err := parseDeviceDescription([]byte(deviceDescription))
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, ServiceRecord{
		ServiceType: "urn:schemas-upnp-org:service:Layer3Forwarding:1",
		ControlURL:  "/l3f",
		SCPDURL:     "/l3f.xml",
	}, records[0])
	require.Equal(t, ServiceRecord{
		ServiceType: "urn:schemas-upnp-org:service:WANIPConnection:1",
		ControlURL:  "/control",
		SCPDURL:     "/scpd.xml",
	}, records[1])
}

func TestParseDeviceDescription_IncompleteService(t *testing.T) {
	doc := `<?xml version="1.0"?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
  <device>
    <serviceList>
      <service>
        <serviceType>urn:schemas-upnp-org:service:WANIPConnection:1</serviceType>
        <SCPDURL>/scpd.xml</SCPDURL>
      </service>
    </serviceList>
  </device>
</root>`

	records, err := parseDeviceDescription([]byte(doc))
	require.ErrorIs(t, err, ErrIncompleteService)
	require.Nil(t, records)
}

func TestParseDeviceDescription_MalformedXML(t *testing.T) {
	_, err := parseDeviceDescription([]byte("<root><device>"))
	require.Error(t, err)
}

func TestResolveRef(t *testing.T) {
	base, err := url.Parse("http://192.168.1.1:5000/rootDesc.xml")
	require.NoError(t, err)

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "absolute path", ref: "/control", want: "http://192.168.1.1:5000/control"},
		{name: "relative path", ref: "scpd.xml", want: "http://192.168.1.1:5000/scpd.xml"},
		{name: "already absolute", ref: "http://192.168.1.1:8080/ctl", want: "http://192.168.1.1:8080/ctl"},
		{name: "with query", ref: "/ctl?svc=wan", want: "http://192.168.1.1:5000/ctl?svc=wan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRef(base, tt.ref)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

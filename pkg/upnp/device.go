package upnp

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// ServiceRecord is one service entry from a device description. The URL
// fields hold the document's text verbatim and may be relative; resolve
// them against the description's own URL with resolveRef.
type ServiceRecord struct {
	ServiceType string `json:"serviceType"`
	ControlURL  string `json:"controlURL"`
	SCPDURL     string `json:"scpdURL"`
}

type descriptionRoot struct {
	XMLName xml.Name          `xml:"root"`
	Device  descriptionDevice `xml:"device"`
}

type descriptionDevice struct {
	DeviceType string               `xml:"deviceType"`
	Devices    []descriptionDevice  `xml:"deviceList>device"`
	Services   []descriptionService `xml:"serviceList>service"`
}

type descriptionService struct {
	ServiceType string `xml:"serviceType"`
	ControlURL  string `xml:"controlURL"`
	SCPDURL     string `xml:"SCPDURL"`
}

// parseDeviceDescription collects every service entry in the document,
// walking embedded devices at any depth. A service missing any of its
// three required fields rejects the whole document; a caller never sees
// a partial record.
func parseDeviceDescription(doc []byte) ([]ServiceRecord, error) {
	var root descriptionRoot
	if err := xml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("error decoding device description: %w", err)
	}

	var records []ServiceRecord
	if err := collectServices(&root.Device, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func collectServices(dev *descriptionDevice, out *[]ServiceRecord) error {
	for _, s := range dev.Services {
		rec := ServiceRecord{
			ServiceType: strings.TrimSpace(s.ServiceType),
			ControlURL:  strings.TrimSpace(s.ControlURL),
			SCPDURL:     strings.TrimSpace(s.SCPDURL),
		}
		if rec.ServiceType == "" || rec.ControlURL == "" || rec.SCPDURL == "" {
			return fmt.Errorf("%w: serviceType=%q controlURL=%q SCPDURL=%q",
				ErrIncompleteService, rec.ServiceType, rec.ControlURL, rec.SCPDURL)
		}
		*out = append(*out, rec)
	}

	for i := range dev.Devices {
		if err := collectServices(&dev.Devices[i], out); err != nil {
			return err
		}
	}

	return nil
}

// resolveRef resolves a possibly-relative control or SCPD URL against the
// device description's URL.
func resolveRef(base *url.URL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("error parsing url %q: %w", ref, err)
	}
	return base.ResolveReference(u).String(), nil
}

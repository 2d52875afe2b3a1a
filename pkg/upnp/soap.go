package upnp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// invoke sends an empty-argument SOAP action call to a service's control
// URL and returns the raw response body. The response is never
// interpreted here; callers decide what to make of it.
func invoke(ctx context.Context, client *http.Client, controlURL, serviceType, actionName string) (string, error) {
	body := envelope(fmt.Sprintf(`<u:%s xmlns:u="%s"/>`, actionName, serviceType))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, controlURL, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating soap request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header["SOAPAction"] = []string{fmt.Sprintf(`"%s#%s"`, serviceType, actionName)}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling %s on %s: %w", actionName, controlURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading soap response body: %w", err)
	}

	if resp.StatusCode < 200 || 300 <= resp.StatusCode {
		return "", fmt.Errorf("%w from %s calling %s: %s", ErrHTTPStatus, controlURL, actionName, resp.Status)
	}

	return string(respBody), nil
}

func envelope(payload string) string {
	tmplt := `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
<s:Body>%s</s:Body>
</s:Envelope>
`

	return fmt.Sprintf(tmplt, payload)
}

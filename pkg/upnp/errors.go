package upnp

import "errors"

var (
	// ErrNoResponse means the gateway never answered the discovery
	// datagram within the receive deadline.
	ErrNoResponse = errors.New("no response from gateway")

	// ErrMissingLocation means the discovery reply carried no LOCATION
	// header.
	ErrMissingLocation = errors.New("no location header in discovery reply")

	// ErrIncompleteService means a service element in the device
	// description is missing one of serviceType, controlURL or SCPDURL.
	ErrIncompleteService = errors.New("incomplete service entry in device description")

	// ErrBadDirection means an SCPD argument declared a direction other
	// than "in" or "out".
	ErrBadDirection = errors.New("invalid argument direction")

	// ErrHTTPStatus means a fetch or invocation got a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")
)

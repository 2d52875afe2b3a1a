package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	require.NoError(t, ValidateAddress("192.168.1.1"))
	require.NoError(t, ValidateAddress("10.0.0.1"))

	require.Error(t, ValidateAddress(""))
	require.Error(t, ValidateAddress("not-an-ip"))
	require.Error(t, ValidateAddress("fe80::1"))
	require.Error(t, ValidateAddress("192.168.1.1:1900"))
}

package mirrorconf_test

import (
	"context"
	"net"
	"testing"

	"github.com/0xalexb/mirrorconf"

	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", mirrorconf.Version)
	require.Equal(t, "unknown", mirrorconf.Commit)
	require.Equal(t, "unknown", mirrorconf.CompiledAt)
	require.Equal(t, "dev (unknown, built unknown)", mirrorconf.VersionString())
}

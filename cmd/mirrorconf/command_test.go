package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/mirrorconf"
)

const configJSON = `{
	"user": "mirror",
	"group": 1000,
	"pid_file": "/run/mirror-server.pid",
	"data_path": "/srv/mirror",
	"log": {"log_path": "/var/log/mirror-server.log", "log_level": "Info", "max_log_days": 30},
	"distros": ["debian"]
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "mirror.json", configJSON)

	for _, args := range [][]string{
		{"mirrorconf", "--config", path, "check"},
		{"mirrorconf", "-c", path},
	} {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			require.NoError(t, newCommand(&out).Run(context.Background(), args))

			assert.Contains(t, out.String(), "arguments: ")
			assert.Contains(t, out.String(), "user = \"mirror\"\n")
			assert.Contains(t, out.String(), "log/max_log_days = 30\n")
			assert.Contains(t, out.String(), "client_protocols/rsync = {exec: \"rsync\", interval: 3600, max_connection: 10}\n")
			assert.NotContains(t, out.String(), "\x1b[", "no color when not writing to a terminal")
		})
	}
}

func TestCheckCommand_Color(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "mirror.json", configJSON)

	var out bytes.Buffer

	require.NoError(t, newCommand(&out).Run(context.Background(), []string{"mirrorconf", "--color", "-c", path, "check"}))
	assert.Contains(t, out.String(), "\x1b[")
}

func TestCheckCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		text    string
	}{
		"load failure": {
			content: strings.Replace(configJSON, `"max_log_days": 30`, `"max_log_days": "30"`, 1),
			text:    `config "log/max_log_days" of type typed.Int32: not a number`,
		},
		"parse failure": {
			content: `{"user": `,
			text:    "parsing error",
		},
		"validation failure": {
			content: strings.Replace(configJSON, `"data_path": "/srv/mirror"`, `"data_path": ""`, 1),
			text:    "data_path must not be empty",
		},
	}

	for name, testInfo := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, "mirror.json", testInfo.content)

			err := newCommand(&bytes.Buffer{}).Run(context.Background(), []string{"mirrorconf", "-c", path, "check"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), testInfo.text)
		})
	}
}

func TestConfigFlagDefault(t *testing.T) {
	t.Parallel()

	cmd := newCommand(&bytes.Buffer{})

	var found bool

	for _, flag := range cmd.Flags {
		if flag.Names()[0] == "config" {
			found = true

			assert.Contains(t, flag.Names(), "c")
		}
	}

	require.True(t, found)
	assert.Equal(t, "/etc/mirror-server-conf.json", mirrorconf.DefaultConfigFile)
}

func TestWritePidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run", "mirror-server.pid")
	require.NoError(t, writePidFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid())+"\n", string(data))

	require.NoError(t, writePidFile(""))
}

func TestServeCommand_StartFailureCleansUp(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	busy, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() { _ = busy.Close() })

	port := busy.Addr().(*net.TCPAddr).Port //nolint:forcetypeassert // tcp listener
	dir := t.TempDir()
	pidPath := filepath.Join(dir, "run", "mirror-server.pid")

	path := writeConfig(t, "mirror.json", fmt.Sprintf(`{
	"user": "mirror",
	"group": 1000,
	"pid_file": %q,
	"data_path": %q,
	"log": {"log_path": %q, "log_level": "Error", "max_log_days": 30},
	"server_protocols": {"http": {"address": "127.0.0.1", "port": %d}}
}`, pidPath, dir, filepath.Join(dir, "mirror.log"), port))

	err = newCommand(io.Discard).Run(context.Background(), []string{"mirrorconf", "-c", path, "serve"})
	require.Error(t, err, "the listener cannot bind a busy port")

	_, statErr := os.Stat(pidPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "pid file is removed after a failed start")
}

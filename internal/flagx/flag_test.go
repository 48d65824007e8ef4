package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-c", "-d", "dsn"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "order preserved",
			args:         []string{"-a", ":50051", "-x", "1", "-c", "conf.json"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", ":50051", "-c", "conf.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "a.json", StringValue([]string{"-c", "a.json"}, "c", "config"))
	assert.Equal(t, "b.json", StringValue([]string{"--config=b.json", "-a", ":1"}, "c", "config"))
	assert.Equal(t, "2.json", StringValue([]string{"-c", "1.json", "-config", "2.json"}, "c", "config"))
	assert.Empty(t, StringValue([]string{"-x", "1"}, "c", "config"))
	assert.Empty(t, StringValue([]string{"-c"}, "c"))
}

func TestConfigFileAndEnvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"griot", "-d", "dsn", "-config", "/etc/griot.json", "-env-file", "/etc/griot.env"}
	assert.Equal(t, "/etc/griot.json", ConfigFile())
	assert.Equal(t, "/etc/griot.env", EnvFile())

	os.Args = []string{"griot"}
	assert.Empty(t, ConfigFile())
	assert.Empty(t, EnvFile())
}

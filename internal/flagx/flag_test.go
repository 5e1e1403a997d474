package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, []string{"-c"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"--config=alt.json", "-a", "x"}, []string{"--config"}, []string{"--config=alt.json"}},
		{"unknown flags ignored", []string{"-x", "1", "--y=2", "positional"}, []string{"-c"}, []string{}},
		{"flag at end", []string{"-c"}, []string{"-c"}, []string{"-c"}},
		{"next token is a flag", []string{"-c", "-notvalue"}, []string{"-c"}, []string{"-c"}},
		{"equals value looks like flag", []string{"--config=--weird.json"}, []string{"--config"}, []string{"--config=--weird.json"}},
		{"several names", []string{"-a", "host:1", "-c", "c.json", "--other", "x"}, []string{"-c", "-a"}, []string{"-a", "host:1", "-c", "c.json"}},
		{"repeated flag keeps order", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
		{"empty", []string{}, []string{"-c"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/p/short.json"}, "/p/short.json"},
		{"long", []string{"-config", "/p/long.json"}, "/p/long.json"},
		{"equals", []string{"-config=/p/eq.json"}, "/p/eq.json"},
		{"absent", []string{"-x", "1", "-y", "2"}, ""},
		{"last wins", []string{"-c", "/p/1.json", "-config", "/p/2.json"}, "/p/2.json"},
		{"mixed with other flags", []string{"-a", ":1", "-c", "/p/c.json", "-l", "debug"}, "/p/c.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}

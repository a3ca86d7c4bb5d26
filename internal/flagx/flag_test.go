package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-a", "http://x", "-z", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x"},
		},
		{
			name:    "equals form",
			args:    []string{"--flag=value", "--other=nope"},
			allowed: []string{"--flag"},
			want:    []string{"--flag=value"},
		},
		{
			name:    "mixed forms",
			args:    []string{"-c", "cfg.json", "-config=alt.json", "-v"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "cfg.json", "-config=alt.json"},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-x", "-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "next flag is not consumed as value",
			args:    []string{"-a", "-b"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short flag", args: []string{"citas", "-c", "cfg.json"}, want: "cfg.json"},
		{name: "long flag", args: []string{"citas", "-config", "alt.json"}, want: "alt.json"},
		{name: "equals form", args: []string{"citas", "-config=eq.json"}, want: "eq.json"},
		{name: "absent", args: []string{"citas", "-a", "http://x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}

package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://host", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://host"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--api=http://host", "--other=1"},
			allowed: []string{"--api"},
			want:    []string{"--api=http://host"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-d", "/data"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
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
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"app", "-c", "/tmp/cfg.json", "-a", "http://host"}
	require.Equal(t, "/tmp/cfg.json", JsonConfigFlags())

	os.Args = []string{"app", "-config", "/tmp/other.json"}
	require.Equal(t, "/tmp/other.json", JsonConfigFlags())

	os.Args = []string{"app", "-a", "http://host"}
	require.Equal(t, "", JsonConfigFlags())
}

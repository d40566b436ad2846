package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "openapi.yaml", cfg.Spec)
	require.Equal(t, "README.md", cfg.Readme)
	require.Empty(t, cfg.Templates.Dir)

	require.Equal(t, "Accounts", cfg.Reference.MergeTags["GMB Reviews"])
	require.Equal(t, "Accounts", cfg.Reference.MergeTags["LinkedIn Mentions"])
	require.Equal(t, []string{"Inbox Access"}, cfg.Reference.SkipTags)
	require.Equal(t, "Connect (OAuth)", cfg.Reference.DisplayNames["Connect"])
	require.Equal(t, "Posts", cfg.Reference.PreferredOrder[0])
	require.Equal(t, []string{"Invites"}, cfg.Reference.LastResources)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	content := `spec: api/openapi.yaml
reference:
  skip-tags:
    - Internal
`
	require.NoError(t, os.WriteFile(DefaultFile, []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "api/openapi.yaml", cfg.Spec)
	require.Equal(t, "README.md", cfg.Readme)
	require.Equal(t, []string{"Internal"}, cfg.Reference.SkipTags)
	// Untouched tables keep their defaults.
	require.Equal(t, "Accounts", cfg.Reference.MergeTags["GMB Reviews"])
}

func TestLoadConfigFileInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(DefaultFile, []byte("spec: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			config:  Config{Spec: "openapi.yaml", Readme: "README.md"},
			wantErr: false,
		},
		{
			name:        "missing spec",
			config:      Config{Readme: "README.md"},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name:        "missing readme",
			config:      Config{Spec: "openapi.yaml"},
			wantErr:     true,
			errContains: "readme file is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSkipSet(t *testing.T) {
	r := ReferenceConfig{SkipTags: []string{"Inbox Access", "Internal"}}
	set := r.SkipSet()
	require.True(t, set["Inbox Access"])
	require.True(t, set["Internal"])
	require.False(t, set["Posts"])
}

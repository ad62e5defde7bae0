package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uilens/uilens/internal/config"
)

func TestInitCommand_BasicConfigCreation(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "uilens.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	expectedSections := []string{
		"comparison",
		"tokens",
		"categories",
		"output",
		"performance",
		"color_distance_threshold",
		"acceptance_floor",
	}
	for _, section := range expectedSections {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Config file missing expected section: %s", section)
		}
	}
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "uilens.config.json")

	if err := os.WriteFile(configPath, []byte(`{"existing": true}`), 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	// Without force the existing file is protected
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when file exists without --force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "comparison") {
		t.Error("Config file was not overwritten with new content")
	}
}

func TestInitCommand_MinimalConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "uilens.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "comparison") {
		t.Error("Minimal config missing comparison section")
	}
	if !strings.Contains(contentStr, "output") {
		t.Error("Minimal config missing output section")
	}
}

func TestInitCommand_InvalidDirectory(t *testing.T) {
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/directory/uilens.config.json"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when directory doesn't exist")
	}
	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Expected 'directory does not exist' error, got: %v", err)
	}
}

func TestInitCommand_FullConfigSize(t *testing.T) {
	tmpDir := t.TempDir()

	fullPath := filepath.Join(tmpDir, "full.json")
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", fullPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	fullContent, _ := os.ReadFile(fullPath)

	minimalPath := filepath.Join(tmpDir, "minimal.json")
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", minimalPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}
	minimalContent, _ := os.ReadFile(minimalPath)

	if len(fullContent) <= len(minimalContent) {
		t.Error("Full config should be larger than minimal config")
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	tests := []struct {
		projectType config.ProjectType
		strictness  config.Strictness
		wantColor   string
		wantSize    string
	}{
		{
			projectType: config.ProjectTypeGeneric,
			strictness:  config.StrictnessStandard,
			wantColor:   `"color_distance_threshold": 10`,
			wantSize:    `"size_tolerance": 5`,
		},
		{
			projectType: config.ProjectTypeDesignSystem,
			strictness:  config.StrictnessStrict,
			wantColor:   `"color_distance_threshold": 5`,
			wantSize:    `"size_tolerance": 2`,
		},
		{
			projectType: config.ProjectTypeWebApp,
			strictness:  config.StrictnessRelaxed,
			wantColor:   `"color_distance_threshold": 25`,
			wantSize:    `"size_tolerance": 10`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType)+"_"+string(tt.strictness), func(t *testing.T) {
			template := config.GetFullConfigTemplate(tt.projectType, tt.strictness)

			if !strings.Contains(template, tt.wantColor) {
				t.Errorf("Template missing expected color threshold: %s", tt.wantColor)
			}
			if !strings.Contains(template, tt.wantSize) {
				t.Errorf("Template missing expected size tolerance: %s", tt.wantSize)
			}

			var decoded map[string]any
			if err := json.Unmarshal([]byte(template), &decoded); err != nil {
				t.Errorf("Template is not valid JSON: %v", err)
			}
		})
	}
}

func TestGetFullConfigTemplate_MarketingDisablesTokens(t *testing.T) {
	template := config.GetFullConfigTemplate(config.ProjectTypeMarketing, config.StrictnessStandard)

	var decoded struct {
		Tokens struct {
			Enabled bool `json:"enabled"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal([]byte(template), &decoded); err != nil {
		t.Fatalf("Template is not valid JSON: %v", err)
	}
	if decoded.Tokens.Enabled {
		t.Error("Marketing template should disable token extraction")
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	template := config.GetMinimalConfigTemplate()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(template), &decoded); err != nil {
		t.Fatalf("Minimal template is not valid JSON: %v", err)
	}
	if _, ok := decoded["comparison"]; !ok {
		t.Error("Minimal template missing comparison section")
	}

	full := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)
	if len(template) >= len(full) {
		t.Error("Minimal template should be smaller than full template")
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()

	expectedFlags := []string{"config", "force", "minimal", "interactive"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}

	shortFlags := map[string]string{
		"c": "config",
		"f": "force",
		"i": "interactive",
	}
	for short, long := range shortFlags {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

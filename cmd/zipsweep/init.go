package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zipsweep/zipsweep/internal/config"
)

//go:embed templates/zipsweep.yaml
var profileTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new zipsweep profile file",
		Long: `Initialize creates a new .zipsweep profile file in the current directory.

The generated file includes:
- Default settings for the widget URL, seed range, and pacing
- Example profiles splitting a sweep into regional halves
- Commented documentation for the selector overrides

Examples:
  # Create .zipsweep in current directory
  zipsweep init

  # Create profile file at a specific path
  zipsweep init -o myprofiles.yaml

  # Force overwrite existing file
  zipsweep init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultProfileFile,
		"Output file path for the profile file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing profile file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("profile file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := profileTemplate.ReadFile("templates/zipsweep.yaml")
	if err != nil {
		return fmt.Errorf("failed to read profile template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created profile file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The widget URL and region to sweep")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Seed range, sampling step, and pacing")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Selector overrides for changed widget markup")

	return nil
}

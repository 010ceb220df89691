package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags. zipsweep releases set only
// the version; revision details come from the module build info below.
var version = ""

// getVersion resolves the release version.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

// buildDetails returns the VCS revision and commit time recorded in the
// binary's build info, or "" when the binary was built outside a checkout.
func buildDetails() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev, at string
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
		case "vcs.time":
			at = setting.Value
		}
	}
	switch {
	case rev == "":
		return ""
	case at == "":
		return rev
	default:
		return rev + " " + at
	}
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the zipsweep version and, when recorded, the build revision.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if details := buildDetails(); details != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "zipsweep version %s (%s)\n", getVersion(), details)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "zipsweep version %s\n", getVersion())
		},
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deskscout-cli/internal/config"
	"deskscout-cli/internal/issue"
	"deskscout-cli/internal/xdgdirs"
)

var (
	dirsFlags struct {
		extraDirs      []string
		noDefault      bool
		noCommonExtras bool
	}

	dirsCmd = &cobra.Command{
		Use:   "dirs",
		Short: "Show the directories a scan would visit",
		Long: `Show the directories a scan would visit, in order, with a note for
directories that do not exist on this machine. Missing directories are
not an error; a scan silently skips them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDirs(cmd)
		},
	}
)

func init() {
	dirsCmd.Flags().StringArrayVar(&dirsFlags.extraDirs, "dir", nil, "additional directory to include (can be passed multiple times)")
	dirsCmd.Flags().BoolVar(&dirsFlags.noDefault, "no-default", false, "exclude the default XDG application directories")
	dirsCmd.Flags().BoolVar(&dirsFlags.noCommonExtras, "no-common-extras", false, "exclude Flatpak/Snap desktop export directories")
}

func runDirs(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return issue.WrapWithOperation(err, "load configuration for dirs")
	}

	opts := xdgdirs.Options{
		NoDefault:      cfg.NoDefaultDirs,
		NoCommonExtras: cfg.NoCommonExtras,
		ExtraDirs:      append(append([]string(nil), cfg.ExtraDirs...), dirsFlags.extraDirs...),
	}
	if cmd.Flags().Changed("no-default") {
		opts.NoDefault = dirsFlags.noDefault
	}
	if cmd.Flags().Changed("no-common-extras") {
		opts.NoCommonExtras = dirsFlags.noCommonExtras
	}

	dirs := xdgdirs.ApplicationDirs(opts)
	out := cmd.OutOrStdout()
	if len(dirs) == 0 {
		fmt.Fprintln(out, WarningStyle.Render("No directories to scan."))
		return nil
	}

	fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("Scan directories (%d):", len(dirs))))
	for _, dir := range dirs {
		if info, serr := os.Stat(dir); serr == nil && info.IsDir() {
			fmt.Fprintf(out, "  %s %s\n", SuccessStyle.Render("✓"), dir)
		} else {
			fmt.Fprintf(out, "  %s %s %s\n", MutedStyle.Render("-"), dir, MutedStyle.Render("(missing)"))
		}
	}
	return nil
}

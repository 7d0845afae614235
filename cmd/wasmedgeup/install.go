package wasmedgeup

import (
	"github.com/Arshdeep54/wasmedgeup/pkg/config"
	"github.com/Arshdeep54/wasmedgeup/pkg/install"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	"github.com/Arshdeep54/wasmedgeup/pkg/shell"
	"github.com/Arshdeep54/wasmedgeup/pkg/target"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	var (
		path       string
		tmpdir     string
		osFlag     string
		archFlag   string
		shellFlag  string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "install <version>",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.install")

			settings, err := config.Load()
			if err != nil {
				return err
			}
			if path != "" {
				settings.InstallDir = path
			}
			if tmpdir != "" {
				settings.TmpDir = tmpdir
			}
			if noProgress {
				settings.NoProgress = true
			}

			tgt, err := resolveTarget(osFlag, archFlag)
			if err != nil {
				return err
			}

			var dialect shell.Dialect
			if shellFlag != "" {
				dialect, err = shell.ParseDialect(shellFlag)
				if err != nil {
					return err
				}
			}

			logger.Info().
				Str("version", args[0]).
				Str("installDir", settings.InstallDir).
				Str("os", string(tgt.OS)).
				Str("arch", string(tgt.Arch)).
				Msg("Starting install")

			result, err := install.New(newClient(settings)).Install(cmd.Context(), install.Options{
				Version:    args[0],
				InstallDir: settings.InstallDir,
				TmpDir:     settings.TmpDir,
				Target:     tgt,
				Dialect:    dialect,
			})
			if err != nil {
				return err
			}

			cmd.Printf(MsgInstalledFormat, result.Version.Original(), result.InstallDir)
			for _, profile := range result.ModifiedProfiles {
				cmd.Printf(MsgProfileUpdatedFormat, profile)
			}
			if !result.PathActive {
				cmd.Println(MsgRestartShell)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringVarP(&tmpdir, "tmpdir", "t", "", MsgFlagTmpdir)
	cmd.Flags().StringVarP(&osFlag, "os", "o", "", MsgFlagOS)
	cmd.Flags().StringVarP(&archFlag, "arch", "a", "", MsgFlagArch)
	cmd.Flags().StringVarP(&shellFlag, "shell", "s", "", MsgFlagShell)
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, MsgFlagNoProgress)

	return cmd
}

// resolveTarget combines host detection with the --os/--arch overrides
func resolveTarget(osFlag, archFlag string) (target.Target, error) {
	var tgt target.Target
	var err error

	if osFlag == "" || archFlag == "" {
		tgt, err = target.Detect()
		if err != nil {
			return target.Target{}, err
		}
	}
	if osFlag != "" {
		if tgt.OS, err = target.ParseOS(osFlag); err != nil {
			return target.Target{}, err
		}
	}
	if archFlag != "" {
		if tgt.Arch, err = target.ParseArch(archFlag); err != nil {
			return target.Target{}, err
		}
	}
	return tgt, nil
}

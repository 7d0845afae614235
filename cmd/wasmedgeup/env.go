package wasmedgeup

import (
	"path/filepath"

	"github.com/Arshdeep54/wasmedgeup/pkg/config"
	"github.com/Arshdeep54/wasmedgeup/pkg/shell"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	var (
		path      string
		shellFlag string
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: MsgEnvShort,
		Long:  MsgEnvLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if path != "" {
				settings.InstallDir = path
			}

			dialect := shell.Detect()
			if shellFlag != "" {
				dialect, err = shell.ParseDialect(shellFlag)
				if err != nil {
					return err
				}
			}

			script, err := shell.RenderEnvScript(dialect,
				filepath.Join(settings.InstallDir, "bin"),
				filepath.Join(settings.InstallDir, "lib"))
			if err != nil {
				return err
			}

			cmd.Print(script)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringVarP(&shellFlag, "shell", "s", "", MsgFlagShell)

	return cmd
}

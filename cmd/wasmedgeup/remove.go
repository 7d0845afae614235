package wasmedgeup

import (
	"fmt"
	"os"

	"github.com/Arshdeep54/wasmedgeup/pkg/config"
	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/install"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var (
		path string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"uninstall"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if path != "" {
				settings.InstallDir = path
			}

			if !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errors.New(errors.ErrInvalidInput, "refusing to remove without --yes on a non-interactive terminal")
				}
				confirmed, err := pterm.DefaultInteractiveConfirm.
					WithDefaultText(fmt.Sprintf("Remove the WasmEdge installation at %s?", settings.InstallDir)).
					Show()
				if err != nil {
					return err
				}
				if !confirmed {
					cmd.Println(MsgRemoveAborted)
					return nil
				}
			}

			result, err := install.Remove("", settings.InstallDir)
			if err != nil {
				return err
			}

			if result.Version != "" {
				cmd.Printf(MsgRemovedFormat, result.Version, result.InstallDir)
			} else {
				cmd.Printf(MsgRemovedUnknownFormat, result.InstallDir)
			}
			for _, profile := range result.ModifiedProfiles {
				cmd.Printf(MsgProfileUpdatedFormat, profile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}

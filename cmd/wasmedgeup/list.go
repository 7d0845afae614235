package wasmedgeup

import (
	"os"

	"github.com/Arshdeep54/wasmedgeup/pkg/config"
	"github.com/Arshdeep54/wasmedgeup/pkg/install"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var installedMarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			versions, err := newClient(settings).Releases(cmd.Context())
			if err != nil {
				return err
			}

			installed := install.InstalledVersion(settings.InstallDir)
			styled := isatty.IsTerminal(os.Stdout.Fd()) && !termenv.EnvNoColor()

			printed := 0
			for _, v := range versions {
				if !all && v.Prerelease() != "" {
					continue
				}
				line := v.Original()
				if line == installed {
					marker := MsgInstalledMarker
					if styled {
						marker = installedMarkerStyle.Render(marker)
					}
					line += marker
				}
				cmd.Println(line)
				printed++
			}
			if printed == 0 {
				cmd.Println(MsgNoVersionsFound)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}

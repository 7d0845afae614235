package wasmedgeup

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Install and manage the WasmEdge runtime"
	MsgRootLong = `wasmedgeup installs the WasmEdge runtime into your home directory and
registers its bin and lib directories on PATH and LD_LIBRARY_PATH through a
small shell fragment sourced from your profile. Repeated installs and
repeated sourcing never accumulate duplicate entries.`

	MsgInstallShort = "Install a WasmEdge runtime version"
	MsgInstallLong = `Install downloads the release asset for your platform, verifies its
checksum, unpacks it into the install root (default $HOME/.wasmedge), and
adds a line to your shell profile that sources the generated env fragment.

The version may be "latest" or an explicit version such as 0.14.1.`

	MsgRemoveShort = "Remove the installed WasmEdge runtime"
	MsgRemoveLong = `Remove deletes the install root and strips the env fragment source lines
from your shell profiles.`

	MsgListShort = "List available WasmEdge versions"
	MsgListLong  = `List shows published release versions, newest first. The installed version is marked.`

	MsgEnvShort = "Print the shell env fragment"
	MsgEnvLong = `Env prints the fragment that registers the install's bin directory on PATH
and its lib directory on LD_LIBRARY_PATH, for the selected shell dialect.

Typical use:

  eval "$(wasmedgeup env)"           # POSIX shells
  wasmedgeup env --shell fish | source  # fish`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInstalledFormat      = "Installed WasmEdge %s to %s\n"
	MsgProfileUpdatedFormat = "Updated shell profile %s\n"
	MsgRestartShell         = "Restart your shell or source the profile for the changes to take effect."
	MsgRemovedFormat        = "Removed WasmEdge %s from %s\n"
	MsgRemovedUnknownFormat = "Removed installation at %s\n"
	MsgRemoveAborted        = "Aborted."
	MsgNoVersionsFound      = "No versions found."
	MsgInstalledMarker      = " (installed)"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPath       = "Install root for the WasmEdge runtime (default $HOME/.wasmedge)"
	MsgFlagTmpdir     = "Directory for staging downloaded assets (default system temp dir)"
	MsgFlagOS         = "Target OS for the runtime (default: detected)"
	MsgFlagArch       = "Target architecture for the runtime (default: detected)"
	MsgFlagNoProgress = "Disable the download progress bar"
	MsgFlagShell      = "Shell dialect: sh, bash, zsh, or fish (default: detected from $SHELL)"
	MsgFlagYes        = "Do not ask for confirmation"
	MsgFlagAll        = "Include prerelease versions"
)

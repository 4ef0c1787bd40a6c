package version

import "runtime/debug"

// Revision - The VCS revision the binary was built from, with a "-dirty" suffix for modified trees.
var Revision string

func init() {
	Revision = "<unknown>"
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	modified := false
	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			Revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if modified && Revision != "<unknown>" {
		Revision += "-dirty"
	}
}

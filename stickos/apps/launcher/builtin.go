package launcher

import (
	"time"

	"stickv/stickos/apps/console"
	"stickv/stickos/apps/settings"
	"stickv/stickos/apps/sysinfo"
	"stickv/stickos/kernel"
)

// Builtin returns the launcher factory used by both binaries: settings, system info and the log console.
func Builtin(store settings.Store, log console.Source, started time.Time) func(kernel.Shell) kernel.App {
	return func(sh kernel.Shell) kernel.App {
		return New(sh,
			Entry{Name: "Settings", Open: func(sh kernel.Shell) kernel.App { return settings.New(sh, store) }},
			Entry{Name: "System", Open: func(sh kernel.Shell) kernel.App { return sysinfo.New(sh, started) }},
			Entry{Name: "Console", Open: func(sh kernel.Shell) kernel.App { return console.New(sh, log) }},
		)
	}
}

// Package config loads robofactory's settings.
//
// Settings are read from TOML files, later files overriding earlier ones:
//
//	$XDG_CONFIG_HOME/robofactory/config.toml
//	./robofactory.toml
//	the path given with --config
//
// Missing search-path files are skipped; an explicitly requested file must
// exist. ROBOFACTORY_* environment variables (see EnvVars) override the
// files. Anything not set keeps the value from Default.
//
// # Example
//
//	[input]
//	tick_rate = 60
//	initial_delay = "600ms"
//	repeat_gap = "120ms"
//
//	[bindings]
//	file = "~/.config/robofactory/bindings.toml"
//	watch = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/robofactory.log"
package config

package main

import "runtime"

// Settings configures a generation. Every field can be set from the environment, prefixed by
// PROXYGEN, e.g. PROXYGEN_DRY_RUN=true, and overridden by the command line flags.
type Settings struct {
	// Output is the name of the file receiving all the proxies of a package. When empty, proxies are
	// written next to the file declaring their interface.
	Output  string
	DryRun  bool
	Verbose bool
	// Dir is the directory the package patterns are resolved from.
	Dir  string
	Jobs int
}

func (s *Settings) ApplyDefault() {
	if s.Dir == "" {
		s.Dir = "."
	}
	if s.Jobs <= 0 {
		s.Jobs = runtime.NumCPU()
	}
}

// Package commands defines the basics CLI.
//
// Commands
//
//   - (none)   Run every demo group in order
//   - run      Run selected groups or single demos ("group" or "group/demo")
//   - list     Print the demo catalog, optionally rendered as markdown
//   - version  Print the version
//
// # Implementation
//
// The root command loads basics.yaml and the persistent flags into a
// config.Config before any subcommand runs, then builds the logger and the
// runner from it. Demo output goes to the command's output stream and log
// records go to stderr.
package commands

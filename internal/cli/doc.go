// Package cli defines the cobra root command for classgen. The command does
// its own argument classification instead of relying on cobra's flag parser,
// so any invocation shape it does not recognize falls back to the help screen
// rather than a usage error. Business logic lives in the names and scaffold
// packages; this package only routes, prints and reports errors.
package cli

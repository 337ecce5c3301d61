// Package config holds the file naming conventions used when generating class
// skeletons: the declaration and definition file extensions and the suffix
// appended to include guard tokens. Defaults are embedded in defaults.yaml and
// read through a private Viper instance; no user config file or environment
// variable is consulted.
package config

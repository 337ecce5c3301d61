package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ccpsceo/classgen/internal/branding"
	"github.com/ccpsceo/classgen/internal/config"
	"github.com/spf13/cobra"
)

// environment is what every mode needs; built once per invocation.
type environment struct {
	program     string
	identity    branding.Identity
	conventions config.Conventions
	mode        Mode
	identifier  string
}

func newRootCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   env.identity.Name + " {classname}",
		Short: "Generate C++ class declaration and definition skeletons",
		Long: env.identity.Name + ` creates any missing directories for a path-qualified class name and
writes a header and source skeleton named after the capitalized class.`,
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch env.mode {
			case ModeVersion:
				printVersion(cmd.OutOrStdout(), env)
			case ModeGenerate:
				return runGenerate(cmd.OutOrStdout(), env, env.identifier)
			default:
				printHelp(cmd.OutOrStdout(), env)
			}
			return nil
		},
	}
}

// Execute runs the command for argv (program name first) and returns the
// process exit code: 0 on success, 1 after printing a runtime error.
func Execute(id branding.Identity, conv config.Conventions, argv []string) int {
	return execute(id, conv, argv, os.Stdout, os.Stderr)
}

func execute(id branding.Identity, conv config.Conventions, argv []string, stdout, stderr io.Writer) int {
	program := id.Name
	args := []string{}
	if len(argv) > 0 {
		program = argv[0]
		args = argv[1:]
	}

	// Arguments are classified here and never reach cobra, whose completion
	// commands would otherwise claim identifiers like "completion".
	mode, identifier := Classify(args)
	env := &environment{
		program:     program,
		identity:    id,
		conventions: conv,
		mode:        mode,
		identifier:  identifier,
	}
	cmd := newRootCmd(env)
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Runtime Error: %v\n", err)
		return 1
	}
	return 0
}

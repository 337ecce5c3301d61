package cli

import (
	"fmt"
	"io"
	"strings"
)

func printHelp(w io.Writer, env *environment) {
	fmt.Fprint(w, env.identity.Banner())
	fmt.Fprint(w, usage(env.program, env.conventions.HeaderExt, env.conventions.SourceExt))
}

func usage(program, headerExt, sourceExt string) string {
	example := `"Example` + headerExt + `" and "Example` + sourceExt + `"`

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s ([-h | -v | --help | --version] | {classname})\n\n", program)
	b.WriteString("    -h or --help       display this help screen\n\n")
	b.WriteString("    -v or --version    display the software version\n\n")
	b.WriteString("    OR\n\n")
	b.WriteString("    {classname}        path to the name of the class to generate.\n\n")
	b.WriteString("Examples:\n\n")
	b.WriteString("Use Case 1 - Generate class files in the current directory\n")
	fmt.Fprintf(&b, "    %s example\n\n", program)
	fmt.Fprintf(&b, "This command will create the files %s in the created directory.\n\n", example)
	b.WriteString("Use Case 2 - Generate class files in a nested directory\n")
	fmt.Fprintf(&b, "    %s relative/path/to/example\n\n", program)
	b.WriteString(`This command will create in the current directory, the path "relative/path/to/" if it does not exist.`)
	fmt.Fprintf(&b, "Next, the files %s will be created in the created directory.\n\n", example)
	return b.String()
}

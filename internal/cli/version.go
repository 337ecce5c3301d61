package cli

import (
	"fmt"
	"io"
)

func printVersion(w io.Writer, env *environment) {
	fmt.Fprintln(w, env.identity.Tag())
}

package cli

import (
	"fmt"
	"io"

	"github.com/ccpsceo/classgen/internal/names"
	"github.com/ccpsceo/classgen/internal/scaffold"
)

func runGenerate(w io.Writer, env *environment, identifier string) error {
	fmt.Fprint(w, env.identity.Banner())
	fmt.Fprintln(w, env.identity.Credits())

	d := names.Derive(identifier, env.conventions)
	if _, err := scaffold.Generate(d, w); err != nil {
		return err
	}

	fmt.Fprintln(w, "Done.")
	return nil
}

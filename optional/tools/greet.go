package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/navijation/njoptional/optional"
	"github.com/urfave/cli/v3"
)

// Unset flags become Absent; the callee decides the defaults.
func greet(ctx context.Context, cmd *cli.Command) error {
	var name optional.Optional[string]
	if cmd.IsSet("name") {
		name = optional.Present(cmd.String("name"))
	}

	var times optional.Optional[uint64]
	if cmd.IsSet("times") {
		times = optional.Present(cmd.Uint("times"))
	}

	greeting := optional.Fold("Hello", func(name string) string {
		return "Hello, " + name
	}, name)

	repeated := strings.Repeat(greeting+"\n", int(optional.ValueOr(uint64(1), times)))
	fmt.Print(repeated)

	return nil
}

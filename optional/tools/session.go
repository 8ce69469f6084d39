package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/navijation/njoptional/optional"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func session(ctx context.Context, cmd *cli.Command) error {
	var sessionID optional.Optional[uuid.UUID]
	if cmd.IsSet("id") {
		id, err := uuid.Parse(cmd.String("id"))
		if err != nil {
			return errors.Wrapf(err, "invalid session id %q", cmd.String("id"))
		}
		sessionID = optional.Present(id)
	}

	id := optional.ValueOr(uuid.New(), sessionID)
	if sessionID.IsAbsent() {
		fmt.Printf("generated session %s\n", id)
	} else {
		fmt.Printf("resumed session %s\n", id)
	}

	return nil
}

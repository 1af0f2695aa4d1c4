// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func TypeValidator(value any) error {
	var validTypeFlagValues = []string{"string", "int", "float"}
	for _, v := range validTypeFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validTypeFlagValues)
}

// InputCommandValidator rejects flag combinations that make no sense together.
func InputCommandValidator(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("split") && cmd.IsSet("delim") {
		return errors.New("--split and --delim are mutually exclusive")
	}
	if cmd.Bool("stat") && (cmd.Bool("split") || cmd.IsSet("delim")) {
		return errors.New("--stat cannot be combined with --split or --delim")
	}
	return nil
}

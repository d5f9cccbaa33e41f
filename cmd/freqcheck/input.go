package main

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// forEachInput calls fn for every argument, or for every non-blank,
// non-comment line of stdin when there are no arguments.
func forEachInput(ctx context.Context, args []string, stdin io.Reader, fn func(input string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func inputSource(args []string) string {
	if len(args) > 0 {
		return "args"
	}
	return "stdin"
}

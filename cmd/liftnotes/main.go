package main

import (
	"context"

	"github.com/claude/liftnotes/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

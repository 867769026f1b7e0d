package main

import (
	"context"

	"github.com/orgball2608/story-fixtures/cmd/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}

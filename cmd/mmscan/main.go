package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/mm/cmds"
	"github.com/reusee/mm/configs"
	"github.com/reusee/mm/debugs"
	"github.com/reusee/mm/logs"
	"github.com/reusee/mm/mmlang"
	"github.com/reusee/mm/modes"
	"github.com/reusee/mm/vars"
)

var (
	tapFlag = cmds.Switch("-tap")
)

const defaultSourcePath = "set.mm"

func main() {
	args := os.Args[1:]

	// first non-flag argument is the source path
	var pathArg string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		pathArg = args[0]
		args = args[1:]
	}
	cmds.Execute(args)

	scope := dscope.New(
		new(mmlang.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		scanFile mmlang.ScanFile,
		loader configs.Loader,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		ctx := context.Background()

		path := vars.FirstNonZero(
			pathArg,
			configs.First[string](loader, "source_path"),
			defaultSourcePath,
		)

		statements, err := scanFile(ctx, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *tapFlag {
			labels := make([]string, 0, len(statements))
			for _, statement := range statements {
				if statement.Label != "" {
					labels = append(labels, statement.Label)
				}
			}
			tap(ctx, "scan", map[string]any{
				"path":       path,
				"statements": len(statements),
				"labels":     labels,
			})
		}

		logger.InfoContext(ctx, "ok",
			"path", path,
			"statements", len(statements),
		)
	})
}

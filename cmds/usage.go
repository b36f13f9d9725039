package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	// aliases share the *Command, print each set once
	byCommand := make(map[*Command][]string)
	for name, command := range commands {
		byCommand[command] = append(byCommand[command], name)
	}

	var cmds []*Command
	for command := range byCommand {
		cmds = append(cmds, command)
		slices.Sort(byCommand[command])
	}
	slices.SortFunc(cmds, func(a, b *Command) int {
		return strings.Compare(byCommand[a][0], byCommand[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, command := range cmds {
		names := strings.Join(byCommand[command], " | ")
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "%s%s\n%s  %s\n", indent, names, indent, command.Description)
		} else {
			fmt.Fprintf(os.Stderr, "%s%s\n", indent, names)
		}
		if len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}

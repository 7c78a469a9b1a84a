/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"
)

type CommandKind int

const (
	// CommandSource is a line of source to add to the pending buffer
	CommandSource CommandKind = iota
	// CommandSubmit parses the pending buffer. Sent on an empty line.
	CommandSubmit
	CommandHelp
	CommandTokens
	CommandClear
	CommandExit
	CommandUnknown
)

type Command struct {
	Kind CommandKind
	Data string
}

// Commands lists the meta commands, as typed at the prompt
var Commands = map[string]CommandKind{
	".help":   CommandHelp,
	".tokens": CommandTokens,
	".clear":  CommandClear,
	".exit":   CommandExit,
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'
func ParseREPLCommand(line string) Command {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return Command{Kind: CommandSubmit}
	}

	// meta commands start with a '.', which can never begin a line of source
	if !strings.HasPrefix(trimmed, ".") || strings.HasPrefix(trimmed, "...") {
		return Command{Kind: CommandSource, Data: line}
	}

	cmd := trimmed
	if ind := strings.IndexByte(trimmed, ' '); ind != -1 {
		cmd = trimmed[:ind]
	}

	if kind, ok := Commands[strings.ToLower(cmd)]; ok {
		return Command{Kind: kind}
	}

	return Command{Kind: CommandUnknown, Data: cmd}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The config command: show, set, and locate settings.
package cli

import (
	"fmt"

	"github.com/jeranaias/levdiff/internal/config"
)

// HandleConfig implements the config command.
func HandleConfig(args *Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow(args)
	case "set":
		return configSet(args)
	case "path":
		return configPath(args)
	default:
		return &UsageError{Message: fmt.Sprintf("unknown config subcommand %q (expected show, set, or path)", args.Subcommand)}
	}
}

func configShow(args *Args) error {
	cfg, err := config.Load()
	if err != nil {
		return &CommandError{Command: "config", Reason: "loading configuration", Err: err}
	}

	if args.JSON {
		return PrintJSON("config", cfg)
	}

	fmt.Println(TitleStyle.Render("levdiff configuration"))
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return &CommandError{Command: "config", Reason: "reading key " + key, Err: err}
		}
		fmt.Printf("%s %s\n", LabelStyle.Render(key), ValueStyle.Render(fmt.Sprintf("%v", value)))
	}
	return nil
}

func configSet(args *Args) error {
	if len(args.Files) != 2 {
		return &UsageError{Message: "usage: levdiff config set <key> <value>"}
	}
	key, value := args.Files[0], args.Files[1]

	cfg, err := config.Load()
	if err != nil {
		return &CommandError{Command: "config", Reason: "loading configuration", Err: err}
	}
	if err := cfg.Set(key, value); err != nil {
		return &CommandError{Command: "config", Reason: "setting " + key, Err: err}
	}
	if err := config.Save(cfg); err != nil {
		return &CommandError{Command: "config", Reason: "saving configuration", Err: err}
	}

	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}

func configPath(args *Args) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return &CommandError{Command: "config", Reason: "resolving config path", Err: err}
	}
	if args.JSON {
		return PrintJSON("config", map[string]string{"path": path})
	}
	fmt.Println(path)
	return nil
}

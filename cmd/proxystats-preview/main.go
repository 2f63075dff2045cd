// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/proxystats/proxystats/lib/process"
	"github.com/proxystats/proxystats/lib/settings"
	"github.com/proxystats/proxystats/lib/version"
	"github.com/proxystats/proxystats/payload"
	"github.com/proxystats/proxystats/platform"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		configDir      string
		players        int
		onlineMode     bool
		proxyVersion   string
		managedServers int
		pluginName     string
		pluginVersion  string
		pretty         bool
	)

	flagSet := pflag.NewFlagSet("proxystats-preview", pflag.ContinueOnError)
	flagSet.StringVar(&configDir, "config-dir", "plugins/proxystats", "directory holding config.yml (created if absent)")
	flagSet.IntVar(&players, "players", 0, "connected player count to report")
	flagSet.BoolVar(&onlineMode, "online-mode", true, "whether the proxy runs in online mode")
	flagSet.StringVar(&proxyVersion, "proxy-version", "", "proxy version string to report")
	flagSet.IntVar(&managedServers, "managed-servers", 0, "number of backend servers to report")
	flagSet.StringVar(&pluginName, "plugin", "example-plugin", "plugin name for the plugins section")
	flagSet.StringVar(&pluginVersion, "plugin-version", "0.0.0", "plugin version for the plugins section")
	flagSet.BoolVar(&pretty, "pretty", false, "indent the JSON output")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("proxystats-preview")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	loaded, err := settings.Load(configDir)
	if err != nil {
		return err
	}

	proxy := platform.Static{
		Players:        players,
		Online:         onlineMode,
		ProxyVersion:   proxyVersion,
		ManagedServers: managedServers,
	}
	env := platform.CollectEnv()

	onlineFlag := 0
	if proxy.OnlineMode() {
		onlineFlag = 1
	}

	doc := payload.Document{
		ServerFacts: payload.ServerFacts{
			ServerUUID:     loaded.ServerUUID,
			PlayerAmount:   payload.ClampPlayers(proxy.PlayerCount()),
			ManagedServers: proxy.ManagedServerCount(),
			OnlineMode:     onlineFlag,
			ProxyVersion:   proxy.Version(),
			RuntimeVersion: env.RuntimeVersion,
			OSName:         env.OSName,
			OSArch:         env.OSArch,
			OSVersion:      env.OSVersion,
			CoreCount:      env.CoreCount,
		},
		Plugins: []payload.PluginFacts{
			payload.NewPluginFacts(pluginName, pluginVersion),
		},
	}

	output, err := marshal(doc, pretty)
	if err != nil {
		return fmt.Errorf("encoding preview document: %w", err)
	}
	fmt.Println(string(output))

	if !loaded.Enabled {
		fmt.Fprintln(os.Stderr, "note: reporting is disabled in config.yml; nothing would be sent")
	}
	return nil
}

func marshal(doc payload.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

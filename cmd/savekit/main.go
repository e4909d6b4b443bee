// Command savekit converts binary game saves to and from JSON.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/savekit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/savekit/internal/adapters/driven/editor/process"
	"github.com/custodia-labs/savekit/internal/adapters/driven/savecodec/mmse"
	"github.com/custodia-labs/savekit/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/savekit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/savekit/internal/adapters/driven/stream"
	"github.com/custodia-labs/savekit/internal/adapters/driven/text/jsontext"
	"github.com/custodia-labs/savekit/internal/adapters/driving/cli"
	"github.com/custodia-labs/savekit/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)

	settingsService := services.NewSettingsService(openConfig())
	settings, err := settingsService.Get()
	if err != nil {
		fail(err)
	}

	codec := mmse.New()
	text := jsontext.New(settings.Text.Indent)
	files := filesystem.NewFileStore("")

	cli.SetServices(cli.Services{
		Convert:  services.NewConvertService(codec, text, stream.NewResolver(os.Stdin, os.Stdout)),
		Resave:   services.NewResaveService(codec, files, settings.Resave.DumpDir),
		Edit:     services.NewEditService(codec, text, files, process.NewLauncher(os.Stdin, os.Stdout, os.Stderr)),
		Settings: settingsService,
	})

	if err := cli.Execute(); err != nil {
		fail(err)
	}
}

// openConfig loads ~/.savekit/config.toml. A missing home directory or an
// unreadable file falls back to defaults so conversions still work.
func openConfig() driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		s := styles.NewStyles(os.Stderr, nil)
		fmt.Fprintln(os.Stderr, s.Warning.Render(fmt.Sprintf("Warning: using default settings: %v", err)))
		return memory.NewConfigStore()
	}
	return store
}

func fail(err error) {
	s := styles.NewStyles(os.Stderr, nil)
	fmt.Fprintln(os.Stderr, s.Error.Render("Error:"), err.Error())
	os.Exit(1)
}


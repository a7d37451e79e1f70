// Copyright (c) 2026 taigamcp Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command taigamcp starts an MCP server that exposes a Taiga project
// management instance as a set of tools for AI agents.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rusq/osenv/v2"

	"taigamcp/internal/auth"
	"taigamcp/internal/client"
	"taigamcp/internal/domain"
	"taigamcp/internal/mcp"
	"taigamcp/internal/repo"
)

const (
	baseURLEnv = "TAIGA_URL"

	defBaseURL = "https://api.taiga.io/api/v1"
	defListen  = "127.0.0.1:8493"
)

var build = "dev"

// params is the command line parameters.
type params struct {
	baseURL   string
	token     string
	transport string
	listen    string
	limitsCfg string
	logFile   string

	printVersion bool
	verbose      bool
}

func main() {
	auth.LoadSecrets(auth.SecretFiles)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	lg, closeLog, err := initLog(p.logFile, p.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, p, lg); err != nil {
		lg.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p params, lg *slog.Logger) error {
	token, err := resolveToken(p.token)
	if err != nil {
		return err
	}

	copts := []client.Option{client.WithLogger(lg)}
	if p.limitsCfg != "" {
		limits, err := client.LoadLimits(p.limitsCfg)
		if err != nil {
			return fmt.Errorf("api config: %w", err)
		}
		copts = append(copts, client.WithLimits(*limits))
	}
	cl, err := client.New(p.baseURL, token, copts...)
	if err != nil {
		return err
	}

	srv := mcp.New(repo.New(cl), mcp.WithLogger(lg))

	switch mcp.Transport(p.transport) {
	case mcp.TransportStdio:
		lg.InfoContext(ctx, "starting MCP server", "transport", p.transport, "base_url", p.baseURL)
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		lg.InfoContext(ctx, "starting MCP server", "transport", p.transport, "listen", p.listen, "base_url", p.baseURL)
		return srv.ServeHTTP(ctx, p.listen)
	default:
		return fmt.Errorf("unknown transport %q", p.transport)
	}
}

// resolveToken returns the token given on the command line, falling back to
// the environment and the secrets files.
func resolveToken(flagToken string) (domain.AuthToken, error) {
	if flagToken != "" {
		return domain.NewAuthToken(flagToken)
	}
	return auth.Resolve()
}

// initLog initialises the logger.  Logs go to stderr by default, as stdout
// is the MCP transport when running with -transport=stdio; -log redirects
// them to a file.
func initLog(filename string, verbose bool) (*slog.Logger, func(), error) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	w, closeFn := io.Writer(os.Stderr), func() {}
	if filename != "" {
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("taigamcp", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			fs.Output(),
			"taigamcp %s\n"+
				"An MCP server exposing the Taiga project management API as tools.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.baseURL, "base-url", osenv.Value(baseURLEnv, defBaseURL), "Taiga API base `URL` (environment: "+baseURLEnv+")")
	fs.StringVar(&p.token, "token", osenv.Secret(auth.TokenEnv, ""), "Taiga application `token` (environment: "+auth.TokenEnv+")")
	fs.StringVar(&p.transport, "transport", "stdio", "MCP transport: \"stdio\" or \"http\"")
	fs.StringVar(&p.listen, "listen", defListen, "`address` to listen on when -transport=http")
	fs.StringVar(&p.limitsCfg, "api-config", "", "rate limit configuration `file` (yaml)")
	fs.StringVar(&p.logFile, "log", osenv.Value("LOG_FILE", ""), "write log to `file` instead of stderr")
	fs.BoolVar(&p.printVersion, "version", false, "print version and exit")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, nil
}

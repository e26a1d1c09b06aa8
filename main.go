package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"ghfollowers/api"
	"ghfollowers/config"
	"ghfollowers/log"
)

var (
	debug   = flag.Bool("debug", false, "whether to debug requests")
	max     = flag.Int("max", 0, "page size for the followers request")
	apiBase = flag.String("api_base", "", "base URL of the GitHub API")
)

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := api.MakeClient(cfg.Token,
		api.MakeClientDebugFlag(debug),
		api.MakeClientBaseUrlFlag(apiBase))
	if err != nil {
		return err
	}

	followers, err := c.GetFollowers(ctx, api.FollowersMaxFlag(max))
	if err != nil {
		return err
	}
	for _, f := range followers {
		fmt.Fprintln(out, f.Login)
	}
	if *debug {
		log.Printf("fetched %d followers", len(followers))
	}
	return nil
}

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ghfollowers: %v\n", err)
		os.Exit(1)
	}
}

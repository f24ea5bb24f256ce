package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"greenroute/internal/ai"
	"greenroute/internal/config"
	"greenroute/internal/infra"
	"greenroute/internal/maps"
	"greenroute/internal/modules/greenroute"
)

func main() {
	origin := flag.String("origin", "Taipei 101", "trip origin")
	destination := flag.String("destination", "Taipei Main Station", "trip destination")
	waypoints := flag.String("waypoints", "", "pipe-delimited waypoints")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(true)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey, maps.Options{Timeout: cfg.Maps.Timeout})
	if err != nil {
		log.Fatalf("Failed to initialize maps: %v", err)
	}
	provider, err := ai.New(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	facade := greenroute.NewService(routeSvc, greenroute.NewEvaluator(provider, cfg.Eval.Concurrency), nil, logger)

	fmt.Printf("%s -> %s (%s)\n", *origin, *destination, provider.Name())
	results := facade.FindRoutes(ctx, greenroute.Request{
		Origin:      *origin,
		Destination: *destination,
		Waypoints:   greenroute.SplitWaypoints(*waypoints),
	})
	for _, r := range results {
		if r.Content != "" {
			fmt.Println(r.Content)
			continue
		}
		fmt.Printf("Route %d: %s, %s, fuel %s [%s], %d points\n",
			r.RouteNumber, r.Distance, r.Duration, r.FuelUsed, r.Color, len(r.Coordinates))
		fmt.Printf("  AI: %s\n", r.RawReply)
	}
}

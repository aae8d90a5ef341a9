// Command quekno-rx is the CLI composition root: it enumerates a small
// parameter grid (architecture graphs x target costs) and prints one
// summary line per generated benchmark circuit, mirroring the original
// main.py driver without its .qasm/result-file export (out of scope).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dnngky/quekno-rx/archgraph"
	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/quekno"
)

func main() {
	var (
		archNames    = flag.String("archgraphs", "tokyo", "comma-separated architecture graph names (tokyo, rochester, sycamore54, sycamore, grid, line, ring, star)")
		optName      = flag.String("opt", "opt1", "permutation regime: opt1, opt2, or depth")
		costsFlag    = flag.String("costs", "0,1,2,3", "comma-separated target costs")
		seed         = flag.Int64("seed", 1, "base RNG seed")
		subgraphMean = flag.Int("subgraph-size", int(config.SubgraphTokyo), "mean subgraph edge count")
		qbgRatio     = flag.Float64("qbg-ratio", float64(config.QBGRatioTFL), "target one-to-two-qubit-gate ratio")
		constantsIni = flag.String("constants", "", "optional path to a [runtime] constants INI file")
		barriers     = flag.Bool("barriers", true, "emit a barrier between consecutive glinks")
		rows         = flag.Int("rows", 0, "grid rows (grid archgraph only)")
		cols         = flag.Int("cols", 0, "grid cols (grid archgraph only)")
		numNodes     = flag.Int("num-nodes", 0, "node count (line/ring/star archgraph only)")
	)
	flag.Parse()

	opt, err := parseOptType(*optName)
	if err != nil {
		log.Fatalf("quekno-rx: %v", err)
	}

	costs, err := parseCosts(*costsFlag)
	if err != nil {
		log.Fatalf("quekno-rx: %v", err)
	}

	rc := config.DefaultRuntimeConstants()
	if *constantsIni != "" {
		rc, err = config.LoadRuntimeConstants(*constantsIni)
		if err != nil {
			log.Fatalf("quekno-rx: %v", err)
		}
	}

	params := archgraph.Params{Rows: *rows, Cols: *cols, NumNodes: *numNodes}

	i := 0
	for _, name := range strings.Split(*archNames, ",") {
		name = strings.TrimSpace(name)
		ag, err := archgraph.Named(name, params)
		if err != nil {
			log.Fatalf("quekno-rx: %v", err)
		}

		for _, cost := range costs {
			cfg, err := config.New(
				config.WithOptType(opt),
				config.WithTargetCost(cost),
				config.WithArchGraph(ag),
				config.WithSubgraphSize(config.SubgraphSize(*subgraphMean)),
				config.WithQBGRatio(config.QBGRatio(*qbgRatio)),
				config.WithRuntimeConstants(rc),
				config.WithSeed(*seed+int64(i)),
				config.WithBarriers(*barriers),
			)
			if err != nil {
				log.Fatalf("quekno-rx: %v", err)
			}

			b, err := quekno.New(cfg)
			if err != nil {
				log.Fatalf("quekno-rx: %v", err)
			}
			result, err := b.Run(context.Background())
			if err != nil {
				log.Printf("quekno-rx: %s cost=%d: %v", name, cost, err)
				i++
				continue
			}
			fmt.Println(result.Metrics.Summary())
			i++
		}
	}
}

func parseOptType(s string) (config.OptType, error) {
	switch strings.ToLower(s) {
	case "opt1":
		return config.Opt1, nil
	case "opt2":
		return config.Opt2, nil
	case "depth":
		return config.Depth, nil
	default:
		return 0, fmt.Errorf("unknown opt type %q", s)
	}
}

func parseCosts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	costs := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid target cost %q: %w", p, err)
		}
		costs = append(costs, v)
	}
	return costs, nil
}

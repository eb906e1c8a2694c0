package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"plegma/internal/engine"
	"plegma/internal/stream"
	"plegma/internal/topology"
	"plegma/pkg/plegma"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:], out)
	case "landscapes":
		return runLandscapes(args[1:], out)
	case "topology":
		return runTopology(args[1:], out)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runRun(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional run config INI path")
	landscapeName := fs.String("landscape", plegma.DefaultLandscape, "fitness landscape: onemax|trap|sphere|rastrigin")
	topologyName := fs.String("topology", plegma.DefaultTopology, "neighborhood topology: ring|grid|smallworld")
	population := fs.Int("pop", plegma.DefaultPopulation, "population size")
	genomeLength := fs.Int("length", plegma.DefaultGenomeLength, "genome length / dimension")
	generations := fs.Int("gens", plegma.DefaultGenerations, "generation count")
	seed := fs.Int64("seed", plegma.DefaultSeed, "stream seed")
	mutationRate := fs.Float64("mutation", 0, "per-gene mutation probability (0 uses default)")
	crossoverRate := fs.Float64("crossover", 0, "crossover probability (0 uses default)")
	rewiringProb := fs.Float64("rewiring", 0, "small-world rewiring probability")
	initBias := fs.Float64("init-bias", engine.DefaultInitBias, "bit genome initialization ones-probability")
	replacement := fs.String("replacement", "", "replacement policy: strict|probabilistic")
	acceptance := fs.Float64("acceptance", engine.DefaultAcceptanceProb, "acceptance probability for probabilistic replacement")
	diversity := fs.String("diversity", "", "diversity metric: fitness_stddev|edge_distance")
	every := fs.Int("every", 10, "progress print cadence in generations (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	var req plegma.RunRequest
	if *configPath != "" {
		loaded, err := loadRunRequest(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	} else {
		req = plegma.RunRequest{
			Landscape:     *landscapeName,
			Topology:      *topologyName,
			Population:    *population,
			GenomeLength:  *genomeLength,
			Generations:   *generations,
			Seed:          *seed,
			MutationRate:  *mutationRate,
			CrossoverRate: *crossoverRate,
			RewiringProb:  *rewiringProb,
			Replacement:   *replacement,
			Diversity:     *diversity,
		}
	}
	// Explicitly set flags win over config-file values; init-bias and
	// acceptance stay unset unless given, so the facade defaults apply.
	overrideFromFlags(&req, setFlags, map[string]any{
		"landscape":   *landscapeName,
		"topology":    *topologyName,
		"pop":         *population,
		"length":      *genomeLength,
		"gens":        *generations,
		"seed":        *seed,
		"mutation":    *mutationRate,
		"crossover":   *crossoverRate,
		"rewiring":    *rewiringProb,
		"init-bias":   *initBias,
		"replacement": *replacement,
		"acceptance":  *acceptance,
		"diversity":   *diversity,
	})

	eng, err := plegma.NewEngine(req)
	if err != nil {
		return err
	}
	if req.Generations <= 0 {
		req.Generations = plegma.DefaultGenerations
	}

	cfg := eng.Config()
	fmt.Fprintf(out, "landscape=%s topology=%s pop=%d length=%d seed=%d\n",
		cfg.Landscape, cfg.Topology, cfg.PopSize, cfg.GenomeLength, cfg.Seed)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tBEST\tMEAN\tDIVERSITY")
	for g := 0; g < req.Generations; g++ {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(out, "stopped at generation %d: %v\n", eng.Generation(), err)
			break
		}
		eng.Evolve()
		if *every > 0 && eng.Generation()%*every == 0 {
			s := eng.Stats()
			fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\n", eng.Generation(), s.BestFitness, s.MeanFitness, s.Diversity)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := eng.Stats()
	fmt.Fprintf(out, "final: generation=%d best=%.4f mean=%.4f diversity=%.4f\n",
		eng.Generation(), s.BestFitness, s.MeanFitness, s.Diversity)
	fmt.Fprintf(out, "best individual: %s\n", eng.BestIndividual())
	return nil
}

func runLandscapes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("landscapes", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGENOTYPE")
	for _, name := range plegma.Landscapes() {
		kind, err := plegma.LandscapeKind(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, kind)
	}
	return w.Flush()
}

func runTopology(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("topology", flag.ContinueOnError)
	kindName := fs.String("kind", "ring", "topology kind: ring|grid|smallworld")
	size := fs.Int("size", 12, "population size")
	rewiringProb := fs.Float64("rewiring", 0.1, "small-world rewiring probability")
	seed := fs.Int64("seed", plegma.DefaultSeed, "stream seed for rewiring")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size < 1 {
		return usageError("size must be >= 1")
	}

	top := topology.New(*size, topology.ParseKind(*kindName), *rewiringProb, stream.New(*seed), topology.Layout{})

	fmt.Fprintf(out, "kind=%s size=%d\n", top.Kind(), top.Size())
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CELL\tNEIGHBORS\tX\tY")
	for id := 0; id < top.Size(); id++ {
		p := top.Position(id)
		fmt.Fprintf(w, "%d\t%v\t%.1f\t%.1f\n", id, top.Neighbors(id), p.X, p.Y)
	}
	return w.Flush()
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: plegmactl <run|landscapes|topology> [flags]", msg)
}

package main

import (
	"fmt"

	"gopkg.in/ini.v1"

	"plegma/pkg/plegma"
)

// INI section shapes; absent keys keep their zero value, which the facade
// resolves to its documented defaults. init_bias and acceptance_prob are
// mapped only when their keys are present, so an explicit 0 survives.
type runSection struct {
	Landscape    string `ini:"landscape"`
	Topology     string `ini:"topology"`
	Population   int    `ini:"population"`
	GenomeLength int    `ini:"genome_length"`
	Generations  int    `ini:"generations"`
	Seed         int64  `ini:"seed"`
}

type genomeSection struct {
	InitBias float64 `ini:"init_bias"`
	BoundMin float64 `ini:"bound_min"`
	BoundMax float64 `ini:"bound_max"`
	Sigma    float64 `ini:"sigma"`
}

type variationSection struct {
	MutationRate  float64 `ini:"mutation_rate"`
	CrossoverRate float64 `ini:"crossover_rate"`
	RewiringProb  float64 `ini:"rewiring_prob"`
}

type selectionSection struct {
	Replacement    string  `ini:"replacement"`
	AcceptanceProb float64 `ini:"acceptance_prob"`
	Diversity      string  `ini:"diversity"`
}

type layoutSection struct {
	Width  float64 `ini:"width"`
	Height float64 `ini:"height"`
}

// loadRunRequest maps an INI run description onto a facade request.
func loadRunRequest(path string) (plegma.RunRequest, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to load config file %q: %w", path, err)
	}

	var (
		run       runSection
		genome    genomeSection
		variation variationSection
		selection selectionSection
		layout    layoutSection
	)
	if err := cfg.Section("Run").MapTo(&run); err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to map [Run] section: %w", err)
	}
	if err := cfg.Section("Genome").MapTo(&genome); err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to map [Genome] section: %w", err)
	}
	if err := cfg.Section("Variation").MapTo(&variation); err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to map [Variation] section: %w", err)
	}
	if err := cfg.Section("Selection").MapTo(&selection); err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to map [Selection] section: %w", err)
	}
	if err := cfg.Section("Layout").MapTo(&layout); err != nil {
		return plegma.RunRequest{}, fmt.Errorf("failed to map [Layout] section: %w", err)
	}

	req := plegma.RunRequest{
		Landscape:     run.Landscape,
		Topology:      run.Topology,
		Population:    run.Population,
		GenomeLength:  run.GenomeLength,
		Generations:   run.Generations,
		Seed:          run.Seed,
		MutationRate:  variation.MutationRate,
		CrossoverRate: variation.CrossoverRate,
		RewiringProb:  variation.RewiringProb,
		BoundMin:      genome.BoundMin,
		BoundMax:      genome.BoundMax,
		Sigma:         genome.Sigma,
		Replacement:   selection.Replacement,
		Diversity:     selection.Diversity,
		LayoutWidth:   layout.Width,
		LayoutHeight:  layout.Height,
	}
	if cfg.Section("Genome").HasKey("init_bias") {
		req.InitBias = &genome.InitBias
	}
	if cfg.Section("Selection").HasKey("acceptance_prob") {
		req.AcceptanceProb = &selection.AcceptanceProb
	}
	return req, nil
}

// overrideFromFlags applies explicitly set command-line flags onto a
// request, so flags layer over config-file values.
func overrideFromFlags(req *plegma.RunRequest, set map[string]bool, flagValue map[string]any) {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "landscape":
			req.Landscape = v.(string)
		case "topology":
			req.Topology = v.(string)
		case "pop":
			req.Population = v.(int)
		case "length":
			req.GenomeLength = v.(int)
		case "gens":
			req.Generations = v.(int)
		case "seed":
			req.Seed = v.(int64)
		case "mutation":
			req.MutationRate = v.(float64)
		case "crossover":
			req.CrossoverRate = v.(float64)
		case "rewiring":
			req.RewiringProb = v.(float64)
		case "init-bias":
			bias := v.(float64)
			req.InitBias = &bias
		case "replacement":
			req.Replacement = v.(string)
		case "acceptance":
			prob := v.(float64)
			req.AcceptanceProb = &prob
		case "diversity":
			req.Diversity = v.(string)
		}
	}
}

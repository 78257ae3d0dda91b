package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nuranest/pregnancy-triage/internal/evaluation"
	"github.com/nuranest/pregnancy-triage/internal/triage"
	"github.com/nuranest/pregnancy-triage/pkg/config"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "data/golden_cases.json", "JSON file with golden triage cases")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rules, err := triage.Load(cfg.Triage.RulesDir)
	if err != nil {
		log.Fatalf("Failed to load triage rule tables: %v", err)
	}

	cases, err := evaluation.LoadGoldenCases(file)
	if err != nil {
		log.Fatalf("Failed to load golden cases: %v", err)
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatalf("Invalid golden cases: %v", err)
	}

	summary := evaluation.NewRunner(rules).Run(cases)

	fmt.Printf("Cases evaluated:   %d\n", summary.TotalCases)
	fmt.Printf("Cases with hits:   %d\n", summary.CasesWithHits)
	fmt.Printf("Avg Recall@5:      %.3f\n", summary.AvgRecallAt5)
	fmt.Printf("Avg MRR@5:         %.3f\n", summary.AvgMRRAt5)
	fmt.Printf("Top-risk accuracy: %.3f\n", summary.TopRiskAccuracy)
	fmt.Printf("Avg latency:       %s\n", summary.AvgLatency)

	for category, cs := range summary.ByCategory {
		fmt.Printf("  %-12s count=%d recall@5=%.3f mrr@5=%.3f\n",
			category, cs.Count, cs.AvgRecallAt5, cs.AvgMRRAt5)
	}
}

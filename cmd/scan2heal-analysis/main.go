package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Anuj-165/SCAN2HEAL/internal/analyzer"
	"github.com/Anuj-165/SCAN2HEAL/internal/config"
	"github.com/Anuj-165/SCAN2HEAL/internal/extract"
	"github.com/Anuj-165/SCAN2HEAL/internal/logger"
	"github.com/Anuj-165/SCAN2HEAL/internal/medicine"
	"github.com/Anuj-165/SCAN2HEAL/internal/registry"
	"github.com/Anuj-165/SCAN2HEAL/internal/report"
	"github.com/Anuj-165/SCAN2HEAL/internal/repository"
	"github.com/Anuj-165/SCAN2HEAL/internal/symptoms"
	"github.com/Anuj-165/SCAN2HEAL/internal/unidoc"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "medical report to analyze (pdf, image or txt)")
	diseaseID := flag.String("disease", "", "target disease: diabetes, heart, liver, kidney or dengue")
	symptomText := flag.String("symptoms", "", "comma-separated symptom list for triage")
	clarifyBase := flag.String("clarify-base", "", "original symptom list when answering a clarification")
	clarify := flag.String("clarify", "", "clarification symptom answering a previous prompt")
	clarifyRound := flag.Int("clarify-round", 1, "round carried from the clarification prompt")
	pdfOut := flag.String("pdf", "", "write the diagnostic report PDF to this path")
	sideEffects := flag.String("side-effects", "", "look up side effects for a medicine name")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "scan2heal-analysis")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if *sideEffects != "" {
		client := medicine.NewSideEffectsClient(
			cfg.OpenFDA.BaseURL, cfg.OpenFDA.Timeout, cfg.OpenFDA.RetryCount,
			cache, cfg.OpenFDA.CacheTTL, log,
		)
		printJSON(map[string]any{"side_effects": client.Lookup(ctx, *sideEffects)})
		return
	}

	medicineCatalog, err := repository.NewMemoryMedicineCatalog(filepath.Join(cfg.Analysis.DataDir, "drugs_for_common_treatments.csv"))
	if err != nil {
		log.Fatal("Failed to load medicine catalog", zap.Error(err))
	}
	resolver := medicine.NewResolver(medicineCatalog, log)

	if *symptomText != "" || *clarify != "" {
		symptomGraph, err := repository.NewMemorySymptomGraph(filepath.Join(cfg.Analysis.DataDir, "dataset.csv"))
		if err != nil {
			log.Fatal("Failed to load symptom graph", zap.Error(err))
		}
		d := symptoms.NewDisambiguator(symptomGraph, resolver, cfg.Analysis.ClarifyRounds, log)

		if *clarify != "" {
			outcome, err := d.Clarify(ctx, *clarifyBase, *clarify, *clarifyRound)
			if err != nil {
				log.Fatal("Clarification failed", zap.Error(err))
			}
			printJSON(outcome)
			return
		}

		outcome, err := d.Disambiguate(ctx, *symptomText)
		if err != nil {
			log.Fatal("Symptom triage failed", zap.Error(err))
		}
		printJSON(outcome)
		return
	}

	if *filePath == "" || *diseaseID == "" {
		fmt.Fprintln(os.Stderr, "usage: scan2heal-analysis -file report.pdf -disease diabetes [-pdf out.pdf]")
		fmt.Fprintln(os.Stderr, "       scan2heal-analysis -symptoms \"itching, skin rash\"")
		fmt.Fprintln(os.Stderr, "       scan2heal-analysis -side-effects metformin")
		os.Exit(2)
	}

	// PDF reading and report rendering both refuse to run without a
	// registered unidoc key; plain-text and image inputs do not need one.
	if cfg.Analysis.UnidocLicenseKey != "" {
		if err := unidoc.SetLicense(cfg.Analysis.UnidocLicenseKey); err != nil {
			log.Fatal("Failed to register unidoc license", zap.Error(err))
		}
	}

	reg, err := registry.Build(cfg.Analysis.DataDir, log)
	if err != nil {
		log.Fatal("Failed to build model registry", zap.Error(err))
	}

	content, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatal("Failed to read report file", zap.Error(err))
	}

	extractor := extract.New(cfg.Analysis.OCRLanguages, log)
	text, err := extractor.Extract(ctx, filepath.Base(*filePath), content)
	if err != nil {
		log.Fatal("Text extraction failed", zap.Error(err))
	}

	result := analyzer.New(reg, resolver, log).Analyze(ctx, text, *diseaseID)
	printJSON(result)

	if *pdfOut != "" {
		renderer, err := report.NewRenderer(cfg.Analysis.FontPath, log)
		if err != nil {
			log.Fatal("Failed to build report renderer", zap.Error(err))
		}
		pdf, err := renderer.Render(result.Disease, result, result.Medicines, result.FinalDecision)
		if err != nil {
			log.Fatal("Failed to render report", zap.Error(err))
		}
		if err := os.WriteFile(*pdfOut, pdf, 0o644); err != nil {
			log.Fatal("Failed to write report", zap.Error(err))
		}
		log.Info("Wrote diagnostic report", zap.String("path", *pdfOut))
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

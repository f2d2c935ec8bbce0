package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"eaglesounds.in/internal/effects"
	"eaglesounds.in/internal/models"
)

var minimum, maximum int = 10000, 99999

func randomSeed() uint64 {
	return uint64(rand.IntN(maximum-minimum+1) + minimum)
}

// sceneConfig lists the effect scenes pre-generated for the site
var sceneConfig = []effects.SceneConfig{
	{Name: "hero-music", Effect: models.EffectMusic, Seed: randomSeed()},
	{Name: "hero-light", Effect: models.EffectLight, Seed: randomSeed()},
	{Name: "hero-smoke", Effect: models.EffectSmoke, Seed: randomSeed()},
	{Name: "hero-confetti", Effect: models.EffectConfetti, Seed: randomSeed()},
	{Name: "vendor-dj", Effect: models.EffectMusic, Seed: randomSeed()},
	{Name: "vendor-lighting", Effect: models.EffectLight, Seed: randomSeed()},
	{Name: "vendor-smoke", Effect: models.EffectSmoke, Seed: randomSeed()},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <effect> <seed>  (generate single scene)")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	configs := sceneConfig
	if len(os.Args) == 4 {
		effect, err := models.ParseEffectType(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		var seed uint64
		if _, err := fmt.Sscan(os.Args[3], &seed); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid seed %q: %v\n", os.Args[3], err)
			os.Exit(1)
		}
		configs = []effects.SceneConfig{{Name: fmt.Sprintf("%s-%d", effect, seed), Effect: effect, Seed: seed}}
	}

	// Ensure output directory exists
	scenesDir := filepath.Join(outputDir, "scenes")
	if err := os.MkdirAll(scenesDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	// Generate scenes
	for _, config := range configs {
		fmt.Printf("Generating scene %s - %s effect (seed %d)...\n", config.Name, config.Effect, config.Seed)

		gen := effects.NewSceneGenerator(&config)
		scene, err := gen.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			continue
		}

		// Write to file
		filename := config.Name + ".json"
		path := filepath.Join(scenesDir, filename)

		data, err := json.MarshalIndent(scene, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR marshaling JSON: %v\n", err)
			continue
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
			continue
		}

		fmt.Printf("  Created %s (%d elements)\n", filename, scene.Elements())
	}

	fmt.Println("Done!")
}

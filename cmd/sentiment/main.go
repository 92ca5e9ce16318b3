package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/selivandex/climate-sentiment/internal/app"
	"github.com/selivandex/climate-sentiment/internal/config"
	"github.com/selivandex/climate-sentiment/pkg/logger"
)

func main() {
	var (
		dataFile    = flag.String("data-file", "", "Path to the CSV data file")
		outputDir   = flag.String("output-dir", "", "Directory to save outputs")
		interactive = flag.Bool("interactive", false, "Run in interactive mode")
	)
	flag.Parse()

	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags take precedence over environment defaults.
	if *dataFile != "" {
		cfg.Dataset.File = *dataFile
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		runInteractive(a, cfg)
		return
	}

	if err := runPipeline(a, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
}

// runPipeline executes the full pipeline and prints the summary.
func runPipeline(a *app.App, cfg *config.Config) error {
	fmt.Println("Running complete sentiment analysis pipeline...")

	summary, err := a.RunComplete()
	if err != nil {
		return err
	}

	printRunSummary(summary, cfg.Output.Dir)

	if out, err := a.ConsoleSummary(); err == nil {
		fmt.Println(out)
	}

	return nil
}

// printRunSummary reports produced artifacts and any render failures.
func printRunSummary(summary *app.RunSummary, outputDir string) {
	if summary.OK() {
		fmt.Printf("Analysis completed successfully. %d artifacts saved to %s\n",
			len(summary.Artifacts), outputDir)
		return
	}

	fmt.Printf("Analysis completed with %d of %d artifacts failing:\n",
		len(summary.Failures), len(summary.Failures)+len(summary.Artifacts))
	for _, failure := range summary.Failures {
		fmt.Printf("  - %v\n", failure)
	}
}

const menu = `
Options:
1. Load and preprocess data
2. Perform sentiment analysis
3. Create visualizations
4. Generate reports
5. Run complete pipeline
6. Display summary
7. Exit
`

// runInteractive presents the step-by-step menu.
func runInteractive(a *app.App, cfg *config.Config) {
	fmt.Println("Climate Change Sentiment Analysis")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menu)
		fmt.Print("\nEnter your choice (1-7): ")

		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "1":
			report(a.LoadData(), "Data loaded and preprocessed")

		case "2":
			report(a.Analyze(), "Sentiment analysis completed")

		case "3":
			summary, err := a.RenderCharts()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRunSummary(summary, cfg.Output.Dir)

		case "4":
			summary, err := a.WriteReports()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRunSummary(summary, cfg.Output.Dir)

		case "5":
			summary, err := a.RunComplete()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRunSummary(summary, cfg.Output.Dir)

		case "6":
			out, err := a.ConsoleSummary()
			if err != nil {
				fmt.Println("No analysis results available. Please run the analysis first.")
				continue
			}
			fmt.Println(out)

		case "7":
			fmt.Println("Exiting application. Goodbye!")
			return

		default:
			fmt.Println("Invalid choice. Please enter a number between 1-7.")
		}
	}
}

func report(err error, success string) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("%s successfully\n", success)
}

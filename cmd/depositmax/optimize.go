package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/internal/allocator"
	"github.com/fin-tools/depositmax/internal/config"
	"github.com/fin-tools/depositmax/internal/ratedata"
	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/output"
	"github.com/fin-tools/depositmax/pkg/validation"
)

var (
	ratesFlag        string
	amountFlag       float64
	outputFormatFlag string
	compareFlag      bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Compute the best deposit split for a rate schedule",
	Run:   runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&ratesFlag, "rates", "", "path to the rate schedule (.csv or .yaml), overrides data.rateFile")
	optimizeCmd.Flags().Float64Var(&amountFlag, "amount", 0, "total investment override")
	optimizeCmd.Flags().StringVar(&outputFormatFlag, "output-format", "", "type of output override: pretty, csv")
	optimizeCmd.Flags().BoolVar(&compareFlag, "compare", false, "also report naive strategies for comparison")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) {
	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	conf.ApplyDefaults()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	rateFile := conf.Data.RateFile
	if ratesFlag != "" {
		rateFile = ratesFlag
	}
	if rateFile == "" {
		logger.Fatal("no rate schedule given, set data.rateFile or pass --rates",
			zap.String("op", "main"),
		)
	}

	totalInvestment := conf.Optimize.TotalInvestment
	if cmd.Flags().Changed("amount") {
		totalInvestment = amountFlag
	}

	compare := conf.Optimize.Compare
	if cmd.Flags().Changed("compare") {
		compare = compareFlag
	}

	// Load the rate schedule.
	loader := ratedata.NewLoader(logger)
	accounts, warnings, err := loader.LoadFile(rateFile)
	if err != nil {
		logger.Fatal("failed to load rate schedule",
			zap.String("op", "main"),
			zap.String("rateFile", rateFile),
			zap.Error(err),
		)
	}
	warnings = append(warnings, validation.AccountWarnings(accounts)...)
	for _, warning := range warnings {
		logger.Warn("Rate schedule warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the optimization.
	opt := allocator.New(logger)
	result := opt.OptimizeWithSalaryConstraint(accounts, totalInvestment)

	var comparison *allocator.Comparison
	if compare {
		c := opt.Compare(accounts, totalInvestment, result)
		comparison = &c
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(accounts, totalInvestment, result, comparison)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}
}

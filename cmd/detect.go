package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/langdetect"
	"ocrtoolkit/internal/logger"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Detect languages in an image or PDF file",
	Long: `Extract text from a local image or PDF file and detect the languages
present in it. Prints a ranked breakdown with percentages.`,
	Example: `  # Detect languages in a scanned letter
  ocrtoolkit detect letter.jpg

  # Machine-readable output
  ocrtoolkit detect letter.jpg --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().Bool("json", false, "Output as JSON")
	detectCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runDetect(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("detect")

	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")
	path := args[0]

	result, err := runPipelineOnFile(path, timeoutSecs)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Extraction failed")
		return err
	}

	detector := langdetect.New(config.Cached(), langdetect.NewLinguaClassifier())
	detection := detector.Detect(result.Text)

	log.Info().
		Str("file", path).
		Str("primary_language", detection.Primary).
		Int("languages", len(detection.Languages)).
		Msg("Detection complete")

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(detection)
	}

	fmt.Printf("Primary language: %s\n", detection.Primary)
	for _, lang := range detection.Languages {
		fmt.Printf("  %-20s %s  %5.1f%%  (confidence %.2f)\n",
			lang.Name, lang.Code, lang.TextPercentage, lang.Confidence)
	}
	return nil
}

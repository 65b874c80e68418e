package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/dataspot-cli/internal/utils"
)

// envelope wraps every command result so outputs are self-describing and
// individually traceable.
type envelope struct {
	AnalysisID  string   `json:"analysis_id"`
	GeneratedAt string   `json:"generated_at"`
	Command     string   `json:"command"`
	Sources     []string `json:"sources"`
	Result      any      `json:"result"`
}

// writeResult renders the enveloped result as indented JSON, either to the
// given path or to stdout.
func writeResult(command string, sources []string, result any, outPath string) error {
	env := envelope{
		AnalysisID:  uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Command:     command,
		Sources:     sources,
		Result:      result,
	}
	b, err := utils.PrettyJSON(env)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := utils.SafeWriteFile(outPath, b); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s result to %s\n", command, outPath)
		return nil
	}
	fmt.Println(string(b))
	return nil
}

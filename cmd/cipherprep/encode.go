package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/cipherprep/internal/freqenc"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Frequency-rank encode a token string",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInputText(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), freqenc.Encode(input))
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Token string to encode (if empty, read from stdin)")

	return cmd
}

// readInputText returns the --text flag value when set, otherwise the full
// stdin contents. Requires one of the two to be non-empty.
func readInputText(text string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe tokens on stdin")
	}
	return input, nil
}

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/mailbody"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/parser"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/record"
)

func newParseCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse notification mail and print one record per line",
		Long: `Parse reads RFC 822 mail messages from the given files (or stdin when no
file is given), runs the extraction engine over every text/plain body and
prints one serialized record per line. With --raw the input is treated as an
already-decoded plaintext body instead of a mail message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			parsed := 0
			for _, input := range inputs {
				bodies, err := bodiesOf(input, raw)
				if err != nil {
					return err
				}
				for _, body := range bodies {
					txn, ok := parser.Extract(body)
					if !ok {
						fmt.Fprintln(cmd.ErrOrStderr(), "warning: no template matched one body")
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), record.Render(txn))
					parsed++
				}
			}

			if parsed == 0 {
				return fmt.Errorf("no records extracted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "treat input as decoded plaintext, not RFC 822 mail")

	return cmd
}

func readInputs(stdin io.Reader, paths []string) ([][]byte, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return [][]byte{data}, nil
	}

	var inputs [][]byte
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, data)
	}
	return inputs, nil
}

func bodiesOf(input []byte, raw bool) ([]string, error) {
	if raw {
		return []string{string(input)}, nil
	}
	msg, err := mailbody.Parse(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	return msg.Bodies, nil
}

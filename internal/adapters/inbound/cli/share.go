package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/share"
)

func newShareCmd() *cobra.Command {
	var decode string

	cmd := &cobra.Command{
		Use:   "share <file|->",
		Short: "Produce a shareable link for a manifest",
		Long: "Compress manifest text into a shareable link. The link embeds the full\n" +
			"input, so opening it restores and validates the exact text. Use --decode\n" +
			"to reverse a link back into text.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			codec := share.New(cfg.ShareBaseURL)

			if decode != "" {
				text, err := codec.DecodeLink(decode)
				if err != nil {
					return fmt.Errorf("decoding link: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("specify a file to share, or --decode with a link")
			}

			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			link, err := codec.EncodeLink(text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().StringVar(&decode, "decode", "", "Decode a share link back into manifest text")

	return cmd
}

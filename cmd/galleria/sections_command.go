package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"galleria/internal/gallery"
	"galleria/internal/logging"
)

func newSectionsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Scan the photos tree and list sections without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			paths, err := gallery.Resolve(cfg)
			if err != nil {
				return err
			}

			version := time.Now().Format("2006-01-02")
			model, err := gallery.NewBuilder(cfg, paths, version, logger).Build()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, model.Sections)
			}

			out := cmd.OutOrStdout()
			if model.Empty() {
				fmt.Fprintln(out, "No media found. Put files under photos/<section>/ and rerun.")
				return nil
			}

			headers := []string{"Section", "ID", "Images", "Videos", "Embeds", "Total"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
			rows := make([][]string, 0, len(model.Sections))
			for _, sec := range model.Sections {
				var images, videos, embeds int
				for _, item := range sec.Items {
					switch item.Kind {
					case gallery.KindImage:
						images++
					case gallery.KindVideo:
						videos++
					case gallery.KindEmbed:
						embeds++
					}
				}
				rows = append(rows, []string{
					sec.Title,
					sec.ID,
					strconv.Itoa(images),
					strconv.Itoa(videos),
					strconv.Itoa(embeds),
					strconv.Itoa(len(sec.Items)),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the section model as JSON")
	return cmd
}

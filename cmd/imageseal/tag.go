package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imageseal/imageseal/internal/util/validate"
)

var (
	tagName        string
	tagDescription string
)

var tagCmd = &cobra.Command{
	Use:   "tag <resource-id>...",
	Short: "Apply the configured default tags plus Name/Description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if tagName != "" {
			if _, err := validate.TagValue(tagName); err != nil {
				return fmt.Errorf("invalid --name: %w", err)
			}
		}
		if tagDescription != "" {
			if _, err := validate.TagValue(tagDescription); err != nil {
				return fmt.Errorf("invalid --description: %w", err)
			}
		}

		ctx := cmd.Context()
		svc, _, err := connect(ctx)
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := svc.CreateTags(ctx, id, tagName, tagDescription); err != nil {
				return fmt.Errorf("tag %s: %w", id, err)
			}
			cmd.Printf("tagged %s\n", id)
		}
		return nil
	},
}

func init() {
	tagCmd.Flags().StringVar(&tagName, "name", "", "Value for the Name tag")
	tagCmd.Flags().StringVar(&tagDescription, "description", "", "Value for the Description tag")
}

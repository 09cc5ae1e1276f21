package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imageseal/imageseal/internal/platform/cloud"
)

var (
	cleanupTag    string
	cleanupDryRun bool
)

// cleanupDeleter is the slice of the resource manager the cleanup
// command needs.
type cleanupDeleter interface {
	GetVolumes(ctx context.Context, tagKey, tagValue string) ([]*cloud.Volume, error)
	DeleteVolume(ctx context.Context, id string) error
	DeleteSnapshot(ctx context.Context, id string) error
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [snapshot-id...]",
	Short: "Delete leftover volumes and snapshots from failed seal runs",
	Long: `Cleanup deletes all volumes carrying the given tag, plus any
snapshots named explicitly. Volumes still detaching are retried;
volumes already gone are treated as deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, _, err := connect(ctx)
		if err != nil {
			return err
		}
		return runCleanup(ctx, cmd, svc, args)
	},
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupTag, "tag", "", "Delete volumes carrying this tag (key or key=value)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Print what would be deleted without deleting")
}

func runCleanup(ctx context.Context, cmd *cobra.Command, svc cleanupDeleter, snapshotIDs []string) error {
	if cleanupTag != "" {
		key, value, _ := strings.Cut(cleanupTag, "=")
		if key == "" {
			return fmt.Errorf("invalid --tag %q: tag key must not be empty", cleanupTag)
		}
		volumes, err := svc.GetVolumes(ctx, key, value)
		if err != nil {
			return fmt.Errorf("list volumes: %w", err)
		}
		for _, vol := range volumes {
			if cleanupDryRun {
				cmd.Printf("would delete volume %s (%s)\n", vol.ID, vol.State)
				continue
			}
			if err := svc.DeleteVolume(ctx, vol.ID); err != nil {
				return fmt.Errorf("delete volume %s: %w", vol.ID, err)
			}
			cmd.Printf("deleted volume %s\n", vol.ID)
		}
	}
	for _, id := range snapshotIDs {
		if cleanupDryRun {
			cmd.Printf("would delete snapshot %s\n", id)
			continue
		}
		if err := svc.DeleteSnapshot(ctx, id); err != nil {
			return fmt.Errorf("delete snapshot %s: %w", id, err)
		}
		cmd.Printf("deleted snapshot %s\n", id)
	}
	return nil
}

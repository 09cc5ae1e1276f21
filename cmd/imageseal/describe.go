package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/imageseal/imageseal/internal/platform/cloud"
)

// resourceLookup is the slice of the resource manager the describe
// command needs.
type resourceLookup interface {
	GetInstance(ctx context.Context, id string) (*cloud.Instance, error)
	GetVolume(ctx context.Context, id string) (*cloud.Volume, error)
	GetSnapshot(ctx context.Context, id string) (*cloud.Snapshot, error)
	GetImage(ctx context.Context, id string) (*cloud.Image, error)
	GetSecurityGroup(ctx context.Context, id string) (*cloud.SecurityGroup, error)
	GetSubnet(ctx context.Context, id string) (*cloud.Subnet, error)
}

var describeCmd = &cobra.Command{
	Use:   "describe <resource-id>...",
	Short: "Print instances, volumes, snapshots or images as YAML",
	Long: `Describe looks up each resource by its id prefix (i-, vol-, snap-,
ami-, sg-, subnet-) and prints the result as YAML.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, _, err := connect(ctx)
		if err != nil {
			return err
		}
		for _, id := range args {
			resource, err := lookup(ctx, svc, id)
			if err != nil {
				return fmt.Errorf("describe %s: %w", id, err)
			}
			out, err := yaml.Marshal(resource)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "---\n%s", out)
		}
		return nil
	},
}

func lookup(ctx context.Context, svc resourceLookup, id string) (any, error) {
	switch {
	case strings.HasPrefix(id, "i-"):
		return svc.GetInstance(ctx, id)
	case strings.HasPrefix(id, "vol-"):
		return svc.GetVolume(ctx, id)
	case strings.HasPrefix(id, "snap-"):
		return svc.GetSnapshot(ctx, id)
	case strings.HasPrefix(id, "ami-"):
		return svc.GetImage(ctx, id)
	case strings.HasPrefix(id, "sg-"):
		return svc.GetSecurityGroup(ctx, id)
	case strings.HasPrefix(id, "subnet-"):
		return svc.GetSubnet(ctx, id)
	}
	return nil, fmt.Errorf("unrecognized resource id %q", id)
}

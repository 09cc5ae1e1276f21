package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

// CreateSnapshot snapshots a volume and tags the result with name plus
// the Service's default tags.
func (s *Service) CreateSnapshot(ctx context.Context, volumeID, name, description string) (*cloud.Snapshot, error) {
	s.log.V(1).Info("creating snapshot", "volume", volumeID)
	input := &ec2.CreateSnapshotInput{
		VolumeId: aws.String(volumeID),
	}
	if description != "" {
		input.Description = aws.String(description)
	}
	out, err := s.api.CreateSnapshot(ctx, input)
	if err != nil {
		return nil, err
	}
	snapshotID := aws.ToString(out.SnapshotId)
	if err := s.CreateTags(ctx, snapshotID, name, ""); err != nil {
		return nil, err
	}
	return &cloud.Snapshot{
		ID:          snapshotID,
		VolumeID:    aws.ToString(out.VolumeId),
		State:       string(out.State),
		Progress:    aws.ToString(out.Progress),
		Description: aws.ToString(out.Description),
		Tags:        tagMap(out.Tags),
	}, nil
}

// GetSnapshot returns one snapshot by id, retrying the propagation race
// after creation.
func (s *Service) GetSnapshot(ctx context.Context, snapshotID string) (*cloud.Snapshot, error) {
	return retry.DoValue(ctx, s.retry.getSnapshot, func() (*cloud.Snapshot, error) {
		out, err := s.api.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{
			SnapshotIds: []string{snapshotID},
		})
		if err != nil {
			return nil, err
		}
		snap, err := firstOrNotFound(out.Snapshots, codeSnapshotNotFound)
		if err != nil {
			return nil, err
		}
		return toSnapshot(snap), nil
	})
}

// GetSnapshots returns the snapshots with the given ids, retrying while
// any of them is not visible yet.
func (s *Service) GetSnapshots(ctx context.Context, snapshotIDs ...string) ([]*cloud.Snapshot, error) {
	return retry.DoValue(ctx, s.retry.getSnapshot, func() ([]*cloud.Snapshot, error) {
		out, err := s.api.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{
			SnapshotIds: snapshotIDs,
		})
		if err != nil {
			return nil, err
		}
		snapshots := make([]*cloud.Snapshot, 0, len(out.Snapshots))
		for _, snap := range out.Snapshots {
			snapshots = append(snapshots, toSnapshot(snap))
		}
		return snapshots, nil
	})
}

// DeleteSnapshot deletes the snapshot.
func (s *Service) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	_, err := s.api.DeleteSnapshot(ctx, &ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshotID),
	})
	return err
}

func toSnapshot(in types.Snapshot) *cloud.Snapshot {
	return &cloud.Snapshot{
		ID:          aws.ToString(in.SnapshotId),
		VolumeID:    aws.ToString(in.VolumeId),
		State:       string(in.State),
		Progress:    aws.ToString(in.Progress),
		Description: aws.ToString(in.Description),
		Tags:        tagMap(in.Tags),
	}
}

package awsec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

// CreateVolume creates a volume, optionally from a snapshot.
func (s *Service) CreateVolume(ctx context.Context, opts cloud.CreateVolumeOpts) (*cloud.Volume, error) {
	input := &ec2.CreateVolumeInput{
		AvailabilityZone: aws.String(opts.AvailabilityZone),
		Encrypted:        aws.Bool(opts.Encrypted),
	}
	if opts.Size > 0 {
		input.Size = aws.Int32(opts.Size)
	}
	if opts.SnapshotID != "" {
		input.SnapshotId = aws.String(opts.SnapshotID)
	}
	if opts.VolumeType != "" {
		input.VolumeType = types.VolumeType(opts.VolumeType)
	}
	out, err := s.api.CreateVolume(ctx, input)
	if err != nil {
		return nil, err
	}
	return &cloud.Volume{
		ID:               aws.ToString(out.VolumeId),
		State:            string(out.State),
		AvailabilityZone: aws.ToString(out.AvailabilityZone),
		SnapshotID:       aws.ToString(out.SnapshotId),
		Size:             aws.ToInt32(out.Size),
		Tags:             tagMap(out.Tags),
	}, nil
}

// GetVolume returns one volume by id, retrying the propagation race
// after creation.
func (s *Service) GetVolume(ctx context.Context, volumeID string) (*cloud.Volume, error) {
	return retry.DoValue(ctx, s.retry.getVolume, func() (*cloud.Volume, error) {
		out, err := s.api.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
			VolumeIds: []string{volumeID},
		})
		if err != nil {
			return nil, err
		}
		vol, err := firstOrNotFound(out.Volumes, codeVolumeNotFound)
		if err != nil {
			return nil, err
		}
		return toVolume(vol), nil
	})
}

// GetVolumes lists volumes narrowed to those carrying the given tag. An
// empty tagValue matches any volume carrying tagKey regardless of its
// value; an empty tagKey lists everything.
func (s *Service) GetVolumes(ctx context.Context, tagKey, tagValue string) ([]*cloud.Volume, error) {
	input := &ec2.DescribeVolumesInput{}
	switch {
	case tagKey != "" && tagValue != "":
		input.Filters = []types.Filter{{
			Name:   aws.String(fmt.Sprintf("tag:%s", tagKey)),
			Values: []string{tagValue},
		}}
	case tagKey != "":
		input.Filters = []types.Filter{{
			Name:   aws.String("tag-key"),
			Values: []string{tagKey},
		}}
	}
	volumes := make([]*cloud.Volume, 0)
	for {
		out, err := s.api.DescribeVolumes(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, v := range out.Volumes {
			volumes = append(volumes, toVolume(v))
		}
		if out.NextToken == nil {
			return volumes, nil
		}
		input.NextToken = out.NextToken
	}
}

// DeleteVolume deletes the volume. A volume still held by a pending
// operation reports VolumeInUse and is retried; a volume the provider
// already considers gone is a success, since delete is idempotent.
func (s *Service) DeleteVolume(ctx context.Context, volumeID string) error {
	s.log.V(1).Info("deleting volume", "volume", volumeID)
	return retry.Do(ctx, s.retry.deleteVolume, func() error {
		_, err := s.api.DeleteVolume(ctx, &ec2.DeleteVolumeInput{
			VolumeId: aws.String(volumeID),
		})
		if errorCode(err) == codeVolumeNotFound {
			return nil
		}
		return err
	})
}

// AttachVolume attaches the volume to an instance under the given device
// name, retrying while the volume is still busy.
func (s *Service) AttachVolume(ctx context.Context, volumeID, instanceID, device string) error {
	return retry.Do(ctx, s.retry.attachVolume, func() error {
		_, err := s.api.AttachVolume(ctx, &ec2.AttachVolumeInput{
			VolumeId:   aws.String(volumeID),
			InstanceId: aws.String(instanceID),
			Device:     aws.String(device),
		})
		return err
	})
}

// DetachVolume detaches the volume from an instance.
func (s *Service) DetachVolume(ctx context.Context, volumeID, instanceID string, force bool) error {
	input := &ec2.DetachVolumeInput{
		VolumeId: aws.String(volumeID),
		Force:    aws.Bool(force),
	}
	if instanceID != "" {
		input.InstanceId = aws.String(instanceID)
	}
	_, err := s.api.DetachVolume(ctx, input)
	return err
}

func toVolume(in types.Volume) *cloud.Volume {
	return &cloud.Volume{
		ID:               aws.ToString(in.VolumeId),
		State:            string(in.State),
		AvailabilityZone: aws.ToString(in.AvailabilityZone),
		SnapshotID:       aws.ToString(in.SnapshotId),
		Size:             aws.ToInt32(in.Size),
		Tags:             tagMap(in.Tags),
	}
}

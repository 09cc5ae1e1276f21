package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

// Registration constants for paravirtual encryptor images. The root
// device layout is fixed by the encryption workflow's image format.
const (
	registerArchitecture = types.ArchitectureValuesX8664
	registerRootDevice   = "/dev/sda1"
	registerVirtType     = "paravirtual"
)

// RegisterImage registers an image from a block device mapping and
// returns the new image id.
func (s *Service) RegisterImage(ctx context.Context, opts cloud.RegisterImageOpts) (string, error) {
	s.log.V(1).Info("registering image", "name", opts.Name)
	input := &ec2.RegisterImageInput{
		Name:               aws.String(opts.Name),
		Architecture:       registerArchitecture,
		RootDeviceName:     aws.String(registerRootDevice),
		VirtualizationType: aws.String(registerVirtType),
	}
	if opts.Description != "" {
		input.Description = aws.String(opts.Description)
	}
	if opts.KernelID != "" {
		input.KernelId = aws.String(opts.KernelID)
	}
	if len(opts.BlockDevices) > 0 {
		input.BlockDeviceMappings = toBlockDeviceMappings(opts.BlockDevices)
	}
	out, err := s.api.RegisterImage(ctx, input)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.ImageId), nil
}

// CreateImage creates an image from an instance and returns the new
// image id. EC2 validates the instance's dependent resources
// asynchronously, reporting InvalidParameterValue until they converge,
// so this operation carries the adapter's largest retry bound.
func (s *Service) CreateImage(ctx context.Context, opts cloud.CreateImageOpts) (string, error) {
	input := &ec2.CreateImageInput{
		InstanceId: aws.String(opts.InstanceID),
		Name:       aws.String(opts.Name),
		NoReboot:   aws.Bool(opts.NoReboot),
	}
	if opts.Description != "" {
		input.Description = aws.String(opts.Description)
	}
	if len(opts.BlockDevices) > 0 {
		input.BlockDeviceMappings = toBlockDeviceMappings(opts.BlockDevices)
	}
	return retry.DoValue(ctx, s.retry.createImage, func() (string, error) {
		out, err := s.api.CreateImage(ctx, input)
		if err != nil {
			return "", err
		}
		return aws.ToString(out.ImageId), nil
	})
}

// GetImage returns one image by id, retrying the propagation race after
// registration.
func (s *Service) GetImage(ctx context.Context, imageID string) (*cloud.Image, error) {
	return retry.DoValue(ctx, s.retry.getImage, func() (*cloud.Image, error) {
		out, err := s.api.DescribeImages(ctx, &ec2.DescribeImagesInput{
			ImageIds: []string{imageID},
		})
		if err != nil {
			return nil, err
		}
		img, err := firstOrNotFound(out.Images, codeImageNotFound)
		if err != nil {
			return nil, err
		}
		return toImage(img), nil
	})
}

// GetImages lists images matching the filter.
func (s *Service) GetImages(ctx context.Context, filter cloud.ImageFilter) ([]*cloud.Image, error) {
	input := &ec2.DescribeImagesInput{
		Owners: filter.Owners,
	}
	for name, value := range filter.Filters {
		input.Filters = append(input.Filters, types.Filter{
			Name:   aws.String(name),
			Values: []string{value},
		})
	}
	out, err := s.api.DescribeImages(ctx, input)
	if err != nil {
		return nil, err
	}
	images := make([]*cloud.Image, 0, len(out.Images))
	for _, img := range out.Images {
		images = append(images, toImage(img))
	}
	return images, nil
}

func toImage(in types.Image) *cloud.Image {
	img := &cloud.Image{
		ID:             aws.ToString(in.ImageId),
		Name:           aws.ToString(in.Name),
		Description:    aws.ToString(in.Description),
		State:          string(in.State),
		RootDeviceName: aws.ToString(in.RootDeviceName),
		Tags:           tagMap(in.Tags),
	}
	for _, bdm := range in.BlockDeviceMappings {
		device := cloud.BlockDevice{DeviceName: aws.ToString(bdm.DeviceName)}
		if bdm.Ebs != nil {
			device.SnapshotID = aws.ToString(bdm.Ebs.SnapshotId)
			device.VolumeSize = aws.ToInt32(bdm.Ebs.VolumeSize)
			device.VolumeType = string(bdm.Ebs.VolumeType)
			device.DeleteOnTermination = aws.ToBool(bdm.Ebs.DeleteOnTermination)
		}
		img.BlockDevices = append(img.BlockDevices, device)
	}
	return img
}

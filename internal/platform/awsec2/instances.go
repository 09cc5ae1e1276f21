package awsec2

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

const defaultInstanceType = "c3.xlarge"

// RunInstance launches a single instance from an image.
func (s *Service) RunInstance(ctx context.Context, opts cloud.RunInstanceOpts) (*cloud.Instance, error) {
	instanceType := opts.InstanceType
	if instanceType == "" {
		instanceType = defaultInstanceType
	}
	s.log.V(1).Info("launching instance",
		"image", opts.ImageID,
		"securityGroups", opts.SecurityGroupIDs,
		"subnet", opts.SubnetID,
		"type", instanceType,
	)

	input := &ec2.RunInstancesInput{
		ImageId:          aws.String(opts.ImageID),
		InstanceType:     types.InstanceType(instanceType),
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		SecurityGroupIds: opts.SecurityGroupIDs,
		EbsOptimized:     aws.Bool(opts.EBSOptimized),
	}
	if s.keyName != "" {
		input.KeyName = aws.String(s.keyName)
	}
	if opts.SubnetID != "" {
		input.SubnetId = aws.String(opts.SubnetID)
	}
	if opts.Placement != "" {
		input.Placement = &types.Placement{AvailabilityZone: aws.String(opts.Placement)}
	}
	if opts.InstanceProfile != "" {
		input.IamInstanceProfile = &types.IamInstanceProfileSpecification{
			Name: aws.String(opts.InstanceProfile),
		}
	}
	if len(opts.BlockDevices) > 0 {
		input.BlockDeviceMappings = toBlockDeviceMappings(opts.BlockDevices)
	}
	if len(opts.UserData) > 0 {
		s.captureUserData(opts.UserData)
		input.UserData = aws.String(base64.StdEncoding.EncodeToString(opts.UserData))
	}

	out, err := s.api.RunInstances(ctx, input)
	if err != nil {
		s.log.V(1).Info("failed to launch instance", "image", opts.ImageID)
		return nil, err
	}
	inst, err := firstOrNotFound(out.Instances, codeInstanceNotFound)
	if err != nil {
		return nil, err
	}
	s.log.V(1).Info("launched instance", "instance", aws.ToString(inst.InstanceId))
	return toInstance(inst), nil
}

// captureUserData persists the bootstrap payload to a temporary file for
// post-hoc inspection. Diagnostics only: a persistence failure is logged
// and must never fail the launch.
func (s *Service) captureUserData(userData []byte) {
	if !s.debug {
		return
	}
	f, err := os.CreateTemp("", "user-data-")
	if err != nil {
		s.log.V(1).Info("could not create user data capture file", "error", err)
		return
	}
	defer f.Close()
	s.log.V(1).Info("writing instance user data", "path", f.Name())
	if _, err := f.Write(userData); err != nil {
		s.log.V(1).Info("could not write user data capture file", "error", err)
	}
}

// GetInstance returns one instance by id. Lookups issued right after a
// launch can race with propagation, so the not-found code is retried.
func (s *Service) GetInstance(ctx context.Context, instanceID string) (*cloud.Instance, error) {
	return retry.DoValue(ctx, s.retry.getInstance, func() (*cloud.Instance, error) {
		out, err := s.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
			InstanceIds: []string{instanceID},
		})
		if err != nil {
			return nil, err
		}
		instances := make([]types.Instance, 0, 1)
		for _, r := range out.Reservations {
			instances = append(instances, r.Instances...)
		}
		inst, err := firstOrNotFound(instances, codeInstanceNotFound)
		if err != nil {
			return nil, err
		}
		return toInstance(inst), nil
	})
}

// StopInstance requests a stop and returns the instance with its new
// transitional state.
func (s *Service) StopInstance(ctx context.Context, instanceID string) (*cloud.Instance, error) {
	s.log.V(1).Info("stopping instance", "instance", instanceID)
	out, err := s.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}
	change, err := firstOrNotFound(out.StoppingInstances, codeInstanceNotFound)
	if err != nil {
		return nil, err
	}
	inst := &cloud.Instance{ID: aws.ToString(change.InstanceId)}
	if change.CurrentState != nil {
		inst.State = string(change.CurrentState.Name)
	}
	return inst, nil
}

// TerminateInstance requests termination of the instance.
func (s *Service) TerminateInstance(ctx context.Context, instanceID string) error {
	s.log.V(1).Info("terminating instance", "instance", instanceID)
	_, err := s.api.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	return err
}

// GetInstanceAttribute fetches a single named attribute of an instance.
func (s *Service) GetInstanceAttribute(ctx context.Context, instanceID, attribute string) (string, error) {
	out, err := s.api.DescribeInstanceAttribute(ctx, &ec2.DescribeInstanceAttributeInput{
		InstanceId: aws.String(instanceID),
		Attribute:  types.InstanceAttributeName(attribute),
	})
	if err != nil {
		return "", err
	}
	switch types.InstanceAttributeName(attribute) {
	case types.InstanceAttributeNameUserData:
		return attributeValue(out.UserData), nil
	case types.InstanceAttributeNameKernel:
		return attributeValue(out.KernelId), nil
	case types.InstanceAttributeNameRamdisk:
		return attributeValue(out.RamdiskId), nil
	case types.InstanceAttributeNameInstanceType:
		return attributeValue(out.InstanceType), nil
	default:
		return "", fmt.Errorf("unsupported instance attribute %q", attribute)
	}
}

// GetConsoleOutput returns the instance's decoded console output. An
// instance that has not produced output yet yields an empty string.
func (s *Service) GetConsoleOutput(ctx context.Context, instanceID string) (string, error) {
	out, err := s.api.GetConsoleOutput(ctx, &ec2.GetConsoleOutputInput{
		InstanceId: aws.String(instanceID),
	})
	if err != nil {
		return "", err
	}
	if out.Output == nil {
		return "", nil
	}
	decoded, err := base64.StdEncoding.DecodeString(aws.ToString(out.Output))
	if err != nil {
		return "", fmt.Errorf("console output is not valid base64: %w", err)
	}
	return string(decoded), nil
}

func attributeValue(v *types.AttributeValue) string {
	if v == nil {
		return ""
	}
	return aws.ToString(v.Value)
}

func toInstance(in types.Instance) *cloud.Instance {
	inst := &cloud.Instance{
		ID:             aws.ToString(in.InstanceId),
		SubnetID:       aws.ToString(in.SubnetId),
		VPCID:          aws.ToString(in.VpcId),
		RootDeviceName: aws.ToString(in.RootDeviceName),
		Tags:           tagMap(in.Tags),
	}
	if in.State != nil {
		inst.State = string(in.State.Name)
	}
	if in.Placement != nil {
		inst.AvailabilityZone = aws.ToString(in.Placement.AvailabilityZone)
	}
	if len(in.BlockDeviceMappings) > 0 {
		inst.BlockDevices = make(map[string]string, len(in.BlockDeviceMappings))
		for _, bdm := range in.BlockDeviceMappings {
			if bdm.Ebs == nil {
				continue
			}
			inst.BlockDevices[aws.ToString(bdm.DeviceName)] = aws.ToString(bdm.Ebs.VolumeId)
		}
	}
	return inst
}

func toBlockDeviceMappings(devices []cloud.BlockDevice) []types.BlockDeviceMapping {
	mappings := make([]types.BlockDeviceMapping, 0, len(devices))
	for _, d := range devices {
		ebs := &types.EbsBlockDevice{
			DeleteOnTermination: aws.Bool(d.DeleteOnTermination),
		}
		if d.SnapshotID != "" {
			ebs.SnapshotId = aws.String(d.SnapshotID)
		}
		if d.VolumeSize > 0 {
			ebs.VolumeSize = aws.Int32(d.VolumeSize)
		}
		if d.VolumeType != "" {
			ebs.VolumeType = types.VolumeType(d.VolumeType)
		}
		mappings = append(mappings, types.BlockDeviceMapping{
			DeviceName: aws.String(d.DeviceName),
			Ebs:        ebs,
		})
	}
	return mappings
}

package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/platform/cloud"
)

// GetSubnet returns one subnet by id.
func (s *Service) GetSubnet(ctx context.Context, subnetID string) (*cloud.Subnet, error) {
	out, err := s.api.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{subnetID},
	})
	if err != nil {
		return nil, err
	}
	subnet, err := firstOrNotFound(out.Subnets, codeSubnetNotFound)
	if err != nil {
		return nil, err
	}
	return &cloud.Subnet{
		ID:               aws.ToString(subnet.SubnetId),
		VPCID:            aws.ToString(subnet.VpcId),
		AvailabilityZone: aws.ToString(subnet.AvailabilityZone),
		CIDR:             aws.ToString(subnet.CidrBlock),
	}, nil
}

// GetDefaultVPC returns the account's default VPC in the bound region.
// Accounts without one get the provider's not-found condition.
func (s *Service) GetDefaultVPC(ctx context.Context) (*cloud.VPC, error) {
	out, err := s.api.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []types.Filter{{
			Name:   aws.String("is-default"),
			Values: []string{"true"},
		}},
	})
	if err != nil {
		return nil, err
	}
	vpc, err := firstOrNotFound(out.Vpcs, codeVPCNotFound)
	if err != nil {
		return nil, err
	}
	return &cloud.VPC{
		ID:        aws.ToString(vpc.VpcId),
		IsDefault: aws.ToBool(vpc.IsDefault),
	}, nil
}

// GetKeyPair returns the named key pair.
func (s *Service) GetKeyPair(ctx context.Context, name string) (*cloud.KeyPair, error) {
	out, err := s.api.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	})
	if err != nil {
		return nil, err
	}
	kp, err := firstOrNotFound(out.KeyPairs, codeKeyPairNotFound)
	if err != nil {
		return nil, err
	}
	return &cloud.KeyPair{
		Name:        aws.ToString(kp.KeyName),
		Fingerprint: aws.ToString(kp.KeyFingerprint),
	}, nil
}

// GetRegions returns the names of all regions enabled for the account.
func (s *Service) GetRegions(ctx context.Context) ([]string, error) {
	out, err := s.api.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, err
	}
	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.ToString(r.RegionName))
	}
	return regions, nil
}

package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

// CreateSecurityGroup creates a security group, optionally inside a VPC.
func (s *Service) CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (*cloud.SecurityGroup, error) {
	s.log.V(1).Info("creating security group", "name", name, "vpc", vpcID)
	input := &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(description),
	}
	if vpcID != "" {
		input.VpcId = aws.String(vpcID)
	}
	out, err := s.api.CreateSecurityGroup(ctx, input)
	if err != nil {
		return nil, err
	}
	return &cloud.SecurityGroup{
		ID:    aws.ToString(out.GroupId),
		Name:  name,
		VPCID: vpcID,
	}, nil
}

// GetSecurityGroup returns one security group by id, retrying the
// propagation race after creation.
func (s *Service) GetSecurityGroup(ctx context.Context, groupID string) (*cloud.SecurityGroup, error) {
	return retry.DoValue(ctx, s.retry.getSecurityGroup, func() (*cloud.SecurityGroup, error) {
		out, err := s.api.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
			GroupIds: []string{groupID},
		})
		if err != nil {
			return nil, err
		}
		group, err := firstOrNotFound(out.SecurityGroups, codeGroupNotFound)
		if err != nil {
			return nil, err
		}
		return &cloud.SecurityGroup{
			ID:    aws.ToString(group.GroupId),
			Name:  aws.ToString(group.GroupName),
			VPCID: aws.ToString(group.VpcId),
		}, nil
	})
}

// AddIngressRule authorizes one inbound rule on the security group.
func (s *Service) AddIngressRule(ctx context.Context, groupID string, rule cloud.IngressRule) error {
	_, err := s.api.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:    aws.String(groupID),
		IpProtocol: aws.String(rule.Protocol),
		FromPort:   aws.Int32(rule.FromPort),
		ToPort:     aws.Int32(rule.ToPort),
		CidrIp:     aws.String(rule.CIDR),
	})
	return err
}

// DeleteSecurityGroup deletes the security group, retrying while an
// instance that references it is still shutting down.
func (s *Service) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	return retry.Do(ctx, s.retry.deleteSecurityGroup, func() error {
		_, err := s.api.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: aws.String(groupID),
		})
		return err
	})
}

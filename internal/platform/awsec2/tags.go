package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imageseal/imageseal/internal/util/retry"
)

// CreateTags tags a resource with the Service's default tag set plus the
// caller's name and description. Explicit tags win on key collision.
// Tagging a freshly created resource can race with propagation, so every
// not-found code is retried.
func (s *Service) CreateTags(ctx context.Context, resourceID, name, description string) error {
	tags := make(map[string]string, len(s.defaultTags)+2)
	for k, v := range s.defaultTags {
		tags[k] = v
	}
	if name != "" {
		tags["Name"] = name
	}
	if description != "" {
		tags["Description"] = description
	}
	if len(tags) == 0 {
		return nil
	}
	s.log.V(1).Info("tagging resource", "resource", resourceID, "tags", tags)

	sdkTags := make([]types.Tag, 0, len(tags))
	for k, v := range tags {
		sdkTags = append(sdkTags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	return retry.Do(ctx, s.retry.createTags, func() error {
		_, err := s.api.CreateTags(ctx, &ec2.CreateTagsInput{
			Resources: []string{resourceID},
			Tags:      sdkTags,
		})
		return err
	})
}

func tagMap(tags []types.Tag) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

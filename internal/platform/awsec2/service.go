package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/go-logr/logr"

	"github.com/imageseal/imageseal/internal/platform/cloud"
	"github.com/imageseal/imageseal/internal/util/retry"
)

// defaultRetries bounds the eventual-consistency retry policies. With
// the default initial delay the total sleep time is 7.75s.
const defaultRetries = 5

// createImageRetries is larger because EC2 validates the image's
// dependent resources asynchronously and converges noticeably slower
// than plain describe-after-create races.
const createImageRetries = 20

// policies holds one immutable retry policy per operation known to race
// with backend propagation. Bound once at Service construction.
type policies struct {
	getInstance         retry.Policy
	createTags          retry.Policy
	getVolume           retry.Policy
	deleteVolume        retry.Policy
	attachVolume        retry.Policy
	getSnapshot         retry.Policy
	getImage            retry.Policy
	createImage         retry.Policy
	getSecurityGroup    retry.Policy
	deleteSecurityGroup retry.Policy
}

func defaultPolicies() policies {
	bounded := func(c retry.Classifier) retry.Policy {
		return retry.Policy{Retryable: c, MaxRetries: defaultRetries}
	}
	return policies{
		getInstance:  bounded(code(`InvalidInstanceID\.NotFound`)),
		createTags:   bounded(code(`.*\.NotFound`)),
		getVolume:    bounded(code(`InvalidVolume\.NotFound`)),
		deleteVolume: bounded(code(`VolumeInUse`)),
		attachVolume: bounded(code(`VolumeInUse`)),
		getSnapshot:  bounded(code(`InvalidSnapshot\.NotFound`)),
		getImage:     bounded(code(`InvalidAMIID\.NotFound`)),
		createImage: retry.Policy{
			Retryable:  code(`InvalidParameterValue`),
			MaxRetries: createImageRetries,
		},
		getSecurityGroup:    bounded(code(`InvalidGroup\.NotFound`)),
		deleteSecurityGroup: bounded(code(`InvalidGroup\.InUse|DependencyViolation`)),
	}
}

// Service implements cloud.ResourceManager against one EC2 region.
// A Service is bound to a single authenticated session and is not safe
// for concurrent use without external synchronization.
type Service struct {
	api         API
	region      string
	keyName     string
	defaultTags map[string]string
	retry       policies
	log         logr.Logger
	debug       bool
}

var _ cloud.ResourceManager = (*Service)(nil)

// Option configures a Service.
type Option func(*Service)

// WithKeyPair sets the named key pair injected into instance launches.
func WithKeyPair(name string) Option {
	return func(s *Service) {
		s.keyName = name
	}
}

// WithDefaultTags sets the tag set applied to every resource the
// Service creates. Explicit per-call tags win on key collision.
func WithDefaultTags(tags map[string]string) Option {
	return func(s *Service) {
		s.defaultTags = tags
	}
}

// WithLogger sets the observability sink. The default discards.
func WithLogger(log logr.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithDebug enables verbose diagnostics, including persisting instance
// user data to a temporary file before launch.
func WithDebug(debug bool) Option {
	return func(s *Service) {
		s.debug = debug
	}
}

// WithAPI substitutes the EC2 client (useful for testing).
func WithAPI(api API) Option {
	return func(s *Service) {
		s.api = api
	}
}

// Connect binds a Service to a region using the ambient credential chain.
func Connect(ctx context.Context, region string, opts ...Option) (*Service, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		throttleRetrier(),
	)
	if err != nil {
		return nil, err
	}
	return newService(ec2.NewFromConfig(cfg), region, opts...), nil
}

// ConnectAs binds a Service to a region under an assumed cross-account
// role. Credentials are refreshed through STS for the life of the
// Service.
func ConnectAs(ctx context.Context, roleARN, region, sessionName string, opts ...Option) (*Service, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		throttleRetrier(),
	)
	if err != nil {
		return nil, err
	}
	provider := stscreds.NewAssumeRoleProvider(
		sts.NewFromConfig(cfg),
		roleARN,
		func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = sessionName
		},
	)
	cfg.Credentials = aws.NewCredentialsCache(provider)
	return newService(ec2.NewFromConfig(cfg), region, opts...), nil
}

func newService(api API, region string, opts ...Option) *Service {
	s := &Service{
		api:    api,
		region: region,
		retry:  defaultPolicies(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Region returns the region the Service is bound to.
func (s *Service) Region() string {
	return s.region
}
